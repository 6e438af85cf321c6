package transform

import (
	"github.com/townbook/client-go/types"
)

// ClassifyPostType derives the renderable type of a post from which media
// fields are populated. The backend does not reliably set a type
// discriminant, so presence wins over the declared value, in fixed
// precedence: video, then image (including gifs), then poll, then the
// declared type, then text. A post carrying both a poll and a video
// renders as video.
func ClassifyPostType(hasVideo, hasImage, hasPoll bool, declared string) string {
	switch {
	case hasVideo:
		return types.PostTypeVideo
	case hasImage:
		return types.PostTypeImage
	case hasPoll:
		return types.PostTypePoll
	case declared != "":
		return declared
	default:
		return types.PostTypeText
	}
}

// Post maps one raw community record into the canonical feed entry. Total
// and pure; an unidentifiable record keeps an empty ID, which callers
// treat as not actionable.
func Post(raw Raw) types.Post {
	if raw == nil {
		raw = Raw{}
	}
	media := asObject(raw["media"])

	p := types.Post{
		ID:      firstNonEmpty(asString(raw["_id"]), asString(raw["id"])),
		User:    postAuthor(raw),
		Content: asString(raw["content"]),
		Feeling: asString(raw["feeling"]),
	}

	// Images come from media.image, an images array, or a single image
	// field, whichever is populated first.
	images := stringOrList(mediaValue(media, "image"))
	if len(images) == 0 {
		images = asStrings(raw["images"])
	}
	if len(images) == 0 {
		images = stringOrList(raw["image"])
	}
	p.Images = nonNil(images)

	p.Video = firstNonEmpty(asString(mediaValue(media, "video")), asString(raw["video"]))
	p.GIF = firstNonEmpty(asString(raw["gif"]), asString(mediaValue(media, "gif")))

	if pollRaw := asObject(raw["poll"]); pollRaw != nil {
		poll := Poll(pollRaw)
		p.Poll = &poll
	}

	p.Type = ClassifyPostType(
		p.Video != "",
		len(p.Images) > 0 || p.GIF != "",
		p.Poll != nil,
		asString(raw["type"]),
	)

	p.Location = postLocation(raw["location"])
	p.TaggedUsers = taggedUsers(raw["taggedUsers"])
	p.Likes = likeList(raw["likes"])
	p.Comments = commentList(raw["comments"])

	// Never trusted from the payload: the transformer has no notion of the
	// current viewer, so likedByMe is the caller's to compute.
	p.LikedByMe = false

	p.CreatedAt = resolveTime(raw["createdAt"], raw["timestamp"])
	p.UpdatedAt = resolveTime(raw["updatedAt"], raw["timestamp"])

	return p
}

// Comment maps a raw comment record, with the same author aliasing rules
// as Post.
func Comment(raw Raw) types.CommunityComment {
	if raw == nil {
		raw = Raw{}
	}
	return types.CommunityComment{
		ID:        firstNonEmpty(asString(raw["_id"]), asString(raw["id"])),
		User:      postAuthor(raw),
		Content:   firstNonEmpty(asString(raw["content"]), asString(raw["text"])),
		CreatedAt: resolveTime(raw["createdAt"], raw["timestamp"]),
		Likes:     nonNil(likeList(raw["likes"])),
	}
}

// Poll maps a raw poll object. Option IDs keep whichever of _id/id is
// present; totalVotes is carried as-is even when it diverges from the sum
// of the vote lists (see Poll.EffectiveTotalVotes).
func Poll(raw Raw) types.Poll {
	if raw == nil {
		raw = Raw{}
	}
	poll := types.Poll{
		Question:          asString(raw["question"]),
		Options:           []types.PollOption{},
		TotalVotes:        asInt(raw["totalVotes"]),
		UserVotedOptionID: asString(raw["userVotedOptionId"]),
	}
	for _, item := range asArray(raw["options"]) {
		opt := asObject(item)
		if opt == nil {
			continue
		}
		poll.Options = append(poll.Options, types.PollOption{
			ID:    firstNonEmpty(asString(opt["_id"]), asString(opt["id"])),
			Text:  firstNonEmpty(asString(opt["text"]), asString(opt["option"])),
			Votes: nonNil(likeList(opt["votes"])),
		})
	}
	return poll
}

// Story maps a raw story record.
func Story(raw Raw) types.Story {
	if raw == nil {
		raw = Raw{}
	}
	media := asObject(raw["media"])
	return types.Story{
		ID:        firstNonEmpty(asString(raw["_id"]), asString(raw["id"])),
		User:      postAuthor(raw),
		Image:     firstNonEmpty(asString(mediaValue(media, "image")), asString(raw["image"])),
		Video:     firstNonEmpty(asString(mediaValue(media, "video")), asString(raw["video"])),
		Caption:   firstNonEmpty(asString(raw["caption"]), asString(raw["text"])),
		CreatedAt: resolveTime(raw["createdAt"], raw["timestamp"]),
	}
}

// postAuthor pulls the author snippet from either a nested user object or
// the flat userId/userName/profileImageUrl fields.
func postAuthor(raw Raw) types.UserSnippet {
	if user := asObject(raw["user"]); user != nil {
		return types.UserSnippet{
			ID:     firstNonEmpty(asString(user["_id"]), asString(user["id"]), asString(raw["userId"])),
			Name:   firstNonEmpty(asString(user["name"]), asString(user["userName"])),
			Avatar: firstNonEmpty(asString(user["avatar"]), asString(user["profileImageUrl"])),
		}
	}
	return types.UserSnippet{
		ID:     asString(raw["userId"]),
		Name:   asString(raw["userName"]),
		Avatar: asString(raw["profileImageUrl"]),
	}
}

func postLocation(v interface{}) *types.PostLocation {
	obj := asObject(v)
	if obj == nil {
		// A bare string location still renders as a named place.
		if name := asString(v); name != "" {
			return &types.PostLocation{Name: name}
		}
		return nil
	}
	loc := &types.PostLocation{Name: asString(obj["name"])}
	if lat, ok := obj["lat"].(float64); ok {
		loc.Lat = &lat
	}
	if lng, ok := obj["lng"].(float64); ok {
		loc.Lng = &lng
	}
	if loc.Name == "" && loc.Lat == nil && loc.Lng == nil {
		return nil
	}
	return loc
}

func taggedUsers(v interface{}) []types.TaggedUser {
	out := []types.TaggedUser{}
	for _, item := range asArray(v) {
		obj := asObject(item)
		if obj == nil {
			continue
		}
		out = append(out, types.TaggedUser{
			UserID:    firstNonEmpty(asString(obj["userId"]), asString(obj["_id"]), asString(obj["id"])),
			UserName:  firstNonEmpty(asString(obj["userName"]), asString(obj["name"])),
			AvatarURL: firstNonEmpty(asString(obj["avatarUrl"]), asString(obj["avatar"])),
		})
	}
	return out
}

// likeList normalizes a like/vote membership list: entries are user id
// strings, but some records carry user objects instead.
func likeList(v interface{}) []string {
	arr := asArray(v)
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s := asString(item); s != "" {
			out = append(out, s)
			continue
		}
		if obj := asObject(item); obj != nil {
			if id := firstNonEmpty(asString(obj["_id"]), asString(obj["id"]), asString(obj["userId"])); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}

func commentList(v interface{}) []types.CommunityComment {
	out := []types.CommunityComment{}
	for _, item := range asArray(v) {
		out = append(out, Comment(asObject(item)))
	}
	return out
}

func mediaValue(media Raw, key string) interface{} {
	if media == nil {
		return nil
	}
	return media[key]
}
