package transform

import (
	"github.com/townbook/client-go/types"
)

// UserProfile maps a raw profile record, resolving the aliased source
// names (userName vs name, profileImageUrl vs avatar, and so on).
func UserProfile(raw Raw) types.UserProfile {
	if raw == nil {
		raw = Raw{}
	}
	return types.UserProfile{
		ID:            firstNonEmpty(asString(raw["_id"]), asString(raw["id"]), asString(raw["userId"])),
		Name:          firstNonEmpty(asString(raw["name"]), asString(raw["userName"])),
		Avatar:        firstNonEmpty(asString(raw["avatar"]), asString(raw["profileImageUrl"]), asString(raw["avatarUrl"])),
		Bio:           asString(raw["bio"]),
		Location:      asString(raw["location"]),
		Gender:        asString(raw["gender"]),
		DOB:           asString(raw["dob"]),
		AadhaarNumber: asString(raw["aadhaarNumber"]),
		AadhaarImage:  asString(raw["aadhaarImage"]),
		Pincode:       asString(raw["pincode"]),
		Email:         asString(raw["email"]),
		Country:       asString(raw["country"]),

		FollowersCount: asInt(raw["followersCount"]),
		FollowingCount: asInt(raw["followingCount"]),
		IsFollowing:    truthy(raw["isFollowing"]),
		PostsCount:     asInt(raw["postsCount"]),

		JoinedAt: resolveTime(raw["joinedAt"], raw["createdAt"], raw["timestamp"]),
	}
}

// UserSnippet maps a raw user record into the embedded author shape.
func UserSnippet(raw Raw) types.UserSnippet {
	if raw == nil {
		raw = Raw{}
	}
	return types.UserSnippet{
		ID:     firstNonEmpty(asString(raw["_id"]), asString(raw["id"]), asString(raw["userId"])),
		Name:   firstNonEmpty(asString(raw["name"]), asString(raw["userName"])),
		Avatar: firstNonEmpty(asString(raw["avatar"]), asString(raw["profileImageUrl"]), asString(raw["avatarUrl"])),
	}
}

func Category(raw Raw) types.Category {
	if raw == nil {
		raw = Raw{}
	}
	return types.Category{
		ID:          firstNonEmpty(asString(raw["_id"]), asString(raw["id"])),
		Name:        asString(raw["name"]),
		Description: asString(raw["description"]),
		Icon:        asString(raw["icon"]),
	}
}

func Service(raw Raw) types.Service {
	if raw == nil {
		raw = Raw{}
	}
	return types.Service{
		ID:          firstNonEmpty(asString(raw["_id"]), asString(raw["id"])),
		Name:        asString(raw["name"]),
		Description: asString(raw["description"]),
		Icon:        asString(raw["icon"]),
	}
}

func Slider(raw Raw) types.Slider {
	if raw == nil {
		raw = Raw{}
	}
	return types.Slider{
		ID:    firstNonEmpty(asString(raw["_id"]), asString(raw["id"])),
		Image: firstNonEmpty(asString(raw["image"]), asString(raw["imageUrl"])),
		Title: asString(raw["title"]),
		Link:  asString(raw["link"]),
	}
}

// Array wrappers share the BusinessArray guard: non-array input yields an
// empty slice, never a panic.

func PostArray(raw interface{}) []types.Post {
	out := []types.Post{}
	for _, item := range asArray(raw) {
		out = append(out, Post(asObject(item)))
	}
	return out
}

func CommentArray(raw interface{}) []types.CommunityComment {
	out := []types.CommunityComment{}
	for _, item := range asArray(raw) {
		out = append(out, Comment(asObject(item)))
	}
	return out
}

func StoryArray(raw interface{}) []types.Story {
	out := []types.Story{}
	for _, item := range asArray(raw) {
		out = append(out, Story(asObject(item)))
	}
	return out
}

func UserSnippetArray(raw interface{}) []types.UserSnippet {
	out := []types.UserSnippet{}
	for _, item := range asArray(raw) {
		out = append(out, UserSnippet(asObject(item)))
	}
	return out
}

func CategoryArray(raw interface{}) []types.Category {
	out := []types.Category{}
	for _, item := range asArray(raw) {
		out = append(out, Category(asObject(item)))
	}
	return out
}

func ServiceArray(raw interface{}) []types.Service {
	out := []types.Service{}
	for _, item := range asArray(raw) {
		out = append(out, Service(asObject(item)))
	}
	return out
}

func SliderArray(raw interface{}) []types.Slider {
	out := []types.Slider{}
	for _, item := range asArray(raw) {
		out = append(out, Slider(asObject(item)))
	}
	return out
}
