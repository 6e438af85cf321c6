package mockdata

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/townbook/client-go/types"
)

// Store is the in-memory state behind the bundled mock backend. It is
// seeded from the fixtures but serves them as raw payloads with the same
// shape inconsistencies the production backend emits (nested records,
// aliased field names, Firestore timestamps, string booleans), so a
// client talking to the mock server exercises the full transformation
// path. Safe for concurrent use; every record crosses the API as a deep
// copy, so handlers never touch the store's interior maps.
type Store struct {
	mu         sync.RWMutex
	businesses []map[string]interface{}
	posts      []map[string]interface{}
	users      []map[string]interface{}
	stories    []map[string]interface{}
	follows    map[string]map[string]bool // target id -> follower ids
}

func NewStore() *Store {
	s := &Store{follows: map[string]map[string]bool{}}
	for i, b := range businesses {
		s.businesses = append(s.businesses, rawBusiness(b, i))
	}
	for i, p := range posts {
		s.posts = append(s.posts, rawPost(p, i))
	}
	for _, u := range mockUsers {
		s.users = append(s.users, rawUser(u))
	}
	for _, st := range stories {
		s.stories = append(s.stories, rawStory(st))
	}
	s.follows["mock-user-1"] = map[string]bool{"mock-user-2": true, "mock-user-3": true}
	s.follows["mock-user-2"] = map[string]bool{"mock-user-1": true}
	return s
}

// rawBusiness renders a fixture the way the backend would. Even-indexed
// records take the nested selectedApprovedBusiness shape with a Firestore
// timestamp; odd-indexed ones are flat with legacy field names.
func rawBusiness(b types.Business, index int) map[string]interface{} {
	social := map[string]interface{}{
		"facebookLink":  b.FacebookLink,
		"instagramLink": b.InstagramLink,
		"twitterLink":   b.TwitterLink,
	}
	if b.Facebook == types.FlagYes {
		social["facebookProfile"] = b.FacebookLink
	}
	if b.Instagram == types.FlagYes {
		social["instagramProfile"] = b.InstagramLink
	}
	if b.Twitter == types.FlagYes {
		social["twitterProfile"] = b.TwitterLink
	}

	if index%2 == 0 {
		nested := map[string]interface{}{
			"generatedid":      b.ID,
			"businessName":     b.BusinessName,
			"ownerName":        b.OwnerName,
			"description":      b.Description,
			"businessCategory": b.BusinessCategory,
			"products":         b.Products,
			"noOfEmployee":     float64(b.NoOfEmployee),
			"establishedIn":    b.EstablishedIn,
			"address":          b.Address,
			"city":             b.City,
			"state":            b.State,
			"pincode":          b.Pincode,
			"whatsapp":         b.Whatsapp,
			"websiteLinks":     toAny(b.WebsiteLinks),
			"businessImages":   toAny(b.Images),
			"logo":             b.Logo,
			"banner":           b.Banner,
			"selfie":           b.Selfie,
			"rating":           b.Rating,
		}
		for k, v := range social {
			nested[k] = v
		}
		if b.Website == types.FlagYes {
			nested["website"] = "true" // string boolean, as seen in production
		}
		record := map[string]interface{}{
			"_id":                      b.ID,
			"status":                   strings.ToUpper(b.Status),
			"selectedApprovedBusiness": nested,
			"timestamp":                map[string]interface{}{"_seconds": float64(b.CreatedAt.Unix())},
		}
		if b.Featured {
			record["featured"] = "YES"
		}
		return record
	}

	record := map[string]interface{}{
		"id":               b.ID,
		"businessName":     b.BusinessName,
		"ownerName":        b.OwnerName,
		"description":      b.Description,
		"businessCategory": b.BusinessCategory,
		"products":         b.Products,
		"noOfEmployee":     float64(b.NoOfEmployee),
		"establishedIn":    b.EstablishedIn,
		"businessLocation": b.Address,
		"streetAddresses":  toAny(b.StreetAddresses),
		"city":             b.City,
		"state":            b.State,
		"pincode":          b.Pincode,
		"contactNumber":    b.Whatsapp,
		"websiteLink":      b.WebsiteLink,
		"fileUrls":         toAny(b.Images),
		"logo":             b.Logo,
		"banner":           b.Banner,
		"selfie":           b.Selfie,
		"status":           b.Status,
		"rating":           b.Rating,
		"featured":         b.Featured,
		"createdAt":        b.CreatedAt.Format(time.RFC3339),
		"updatedAt":        b.UpdatedAt.Format(time.RFC3339),
	}
	for k, v := range social {
		record[k] = v
	}
	if b.Website == types.FlagYes {
		record["website"] = true
	}
	return record
}

// rawPost alternates between the nested-user and flat-author shapes.
func rawPost(p types.Post, index int) map[string]interface{} {
	record := map[string]interface{}{
		"_id":     p.ID,
		"content": p.Content,
	}
	if index%2 == 0 {
		record["user"] = map[string]interface{}{
			"_id":    p.User.ID,
			"name":   p.User.Name,
			"avatar": p.User.Avatar,
		}
	} else {
		record["userId"] = p.User.ID
		record["userName"] = p.User.Name
		record["profileImageUrl"] = p.User.Avatar
	}

	if len(p.Images) > 0 {
		record["media"] = map[string]interface{}{"image": toAny(p.Images)}
	}
	if p.Video != "" {
		record["media"] = map[string]interface{}{"video": p.Video}
	}
	if p.GIF != "" {
		record["gif"] = p.GIF
	}
	if p.Poll != nil {
		record["poll"] = rawPoll(*p.Poll)
	}
	if p.Feeling != "" {
		record["feeling"] = p.Feeling
	}
	if p.Location != nil {
		record["location"] = map[string]interface{}{"name": p.Location.Name}
	}

	record["likes"] = toAny(p.Likes)
	comments := []interface{}{}
	for _, cm := range p.Comments {
		comments = append(comments, rawComment(cm))
	}
	record["comments"] = comments
	record["timestamp"] = float64(p.CreatedAt.Unix())
	return record
}

func rawPoll(poll types.Poll) map[string]interface{} {
	options := []interface{}{}
	for _, opt := range poll.Options {
		options = append(options, map[string]interface{}{
			"_id":   opt.ID,
			"text":  opt.Text,
			"votes": toAny(opt.Votes),
		})
	}
	return map[string]interface{}{
		"question":   poll.Question,
		"options":    options,
		"totalVotes": float64(poll.TotalVotes),
	}
}

func rawComment(cm types.CommunityComment) map[string]interface{} {
	return map[string]interface{}{
		"_id":             cm.ID,
		"userId":          cm.User.ID,
		"userName":        cm.User.Name,
		"profileImageUrl": cm.User.Avatar,
		"text":            cm.Content,
		"createdAt":       cm.CreatedAt.Format(time.RFC3339),
		"likes":           toAny(cm.Likes),
	}
}

func rawUser(u types.UserSnippet) map[string]interface{} {
	return map[string]interface{}{
		"_id":             u.ID,
		"userName":        u.Name,
		"profileImageUrl": u.Avatar,
		"bio":             "",
		"country":         "India",
	}
}

func rawStory(st types.Story) map[string]interface{} {
	record := map[string]interface{}{
		"_id":      st.ID,
		"userId":   st.User.ID,
		"userName": st.User.Name,
		"caption":  st.Caption,
	}
	if st.Image != "" {
		record["image"] = st.Image
	}
	if st.Video != "" {
		record["video"] = st.Video
	}
	record["timestamp"] = float64(st.CreatedAt.Unix())
	return record
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// cloneValue deep-copies the nested maps and slices a raw record is
// built from. Records handed to handlers must not share memory with the
// store's interior state, or concurrent JSON marshalling races with
// mutations.
func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneRecord(record map[string]interface{}) map[string]interface{} {
	if record == nil {
		return nil
	}
	return cloneValue(record).(map[string]interface{})
}

// --- read side ---

// Businesses filters the raw records the way the backend's listing
// endpoint does: exact status/city/category matches, substring search on
// the business name.
func (s *Store) Businesses(status, city, category, search string) []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []interface{}{}
	for _, record := range s.businesses {
		fields := flatView(record)
		if status != "" && !strings.EqualFold(asRawString(fields["status"]), status) {
			continue
		}
		if city != "" && !strings.EqualFold(asRawString(fields["city"]), city) {
			continue
		}
		if category != "" && !strings.EqualFold(asRawString(fields["businessCategory"]), category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(asRawString(fields["businessName"])), strings.ToLower(search)) {
			continue
		}
		out = append(out, cloneRecord(record))
	}
	return out
}

// Featured returns records flagged featured in any of the backend's
// spellings.
func (s *Store) Featured(city string) []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []interface{}{}
	for _, record := range s.businesses {
		switch f := record["featured"].(type) {
		case bool:
			if !f {
				continue
			}
		case string:
			if f != "YES" && f != "yes" && f != "true" {
				continue
			}
		default:
			continue
		}
		if city != "" && !strings.EqualFold(asRawString(flatView(record)["city"]), city) {
			continue
		}
		out = append(out, cloneRecord(record))
	}
	return out
}

func (s *Store) Business(id string) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecord(s.findBusiness(id))
}

func (s *Store) findBusiness(id string) map[string]interface{} {
	for _, record := range s.businesses {
		if asRawString(record["_id"]) == id || asRawString(record["id"]) == id {
			return record
		}
	}
	return nil
}

// UserBusinesses returns listings owned by the given user. The fixtures
// carry no ownership, so the first record is attributed to each known
// user to keep profile pages populated.
func (s *Store) UserBusinesses(userID string) []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if asRawString(u["_id"]) == userID && len(s.businesses) > 0 {
			return []interface{}{cloneRecord(s.businesses[0])}
		}
	}
	return []interface{}{}
}

func (s *Store) Posts() []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]interface{}, len(s.posts))
	for i, p := range s.posts {
		out[i] = cloneRecord(p)
	}
	return out
}

func (s *Store) UserPosts(userID string) []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []interface{}{}
	for _, p := range s.posts {
		if postAuthorID(p) == userID {
			out = append(out, cloneRecord(p))
		}
	}
	return out
}

func (s *Store) Users() []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]interface{}, len(s.users))
	for i, u := range s.users {
		out[i] = cloneRecord(u)
	}
	return out
}

func (s *Store) Stories() []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]interface{}, len(s.stories))
	for i, st := range s.stories {
		out[i] = cloneRecord(st)
	}
	return out
}

// Search matches posts by content and users by name, case-insensitive.
func (s *Store) Search(q string) (posts, users []interface{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts, users = []interface{}{}, []interface{}{}
	needle := strings.ToLower(q)
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(asRawString(p["content"])), needle) {
			posts = append(posts, cloneRecord(p))
		}
	}
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(asRawString(u["userName"])), needle) {
			users = append(users, cloneRecord(u))
		}
	}
	return posts, users
}

// Profile assembles a raw profile for one user, including follower
// counts and the isFollowing hint for the viewer.
func (s *Store) Profile(userID, currentUserID string) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if asRawString(u["_id"]) != userID {
			continue
		}
		profile := cloneRecord(u)
		profile["followersCount"] = float64(len(s.follows[userID]))
		profile["followingCount"] = float64(s.followingCount(userID))
		profile["postsCount"] = float64(len(s.userPostsLocked(userID)))
		profile["isFollowing"] = currentUserID != "" && s.follows[userID][currentUserID]
		return profile
	}
	return nil
}

func (s *Store) userPostsLocked(userID string) []interface{} {
	out := []interface{}{}
	for _, p := range s.posts {
		if postAuthorID(p) == userID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) followingCount(userID string) int {
	n := 0
	for _, followers := range s.follows {
		if followers[userID] {
			n++
		}
	}
	return n
}

// Followers lists the raw user records following userID.
func (s *Store) Followers(userID string) []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []interface{}{}
	for _, u := range s.users {
		if s.follows[userID][asRawString(u["_id"])] {
			out = append(out, cloneRecord(u))
		}
	}
	return out
}

// Following lists the raw user records userID follows.
func (s *Store) Following(userID string) []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []interface{}{}
	for _, u := range s.users {
		if s.follows[asRawString(u["_id"])][userID] {
			out = append(out, cloneRecord(u))
		}
	}
	return out
}

// --- write side ---

// CreatePost appends a post authored by the given user and returns the
// raw record.
func (s *Store) CreatePost(body map[string]interface{}, author types.UserSnippet) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := map[string]interface{}{
		"_id":     uuid.NewString(),
		"content": asRawString(body["content"]),
		"user": map[string]interface{}{
			"_id":    author.ID,
			"name":   author.Name,
			"avatar": author.Avatar,
		},
		"likes":     []interface{}{},
		"comments":  []interface{}{},
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	}
	for _, key := range []string{"images", "video", "gif", "feeling", "location", "taggedUsers"} {
		if v, ok := body[key]; ok && v != nil {
			record[key] = v
		}
	}
	if poll, ok := body["poll"].(map[string]interface{}); ok {
		options := []interface{}{}
		for _, opt := range pollOptionTexts(poll) {
			options = append(options, map[string]interface{}{
				"_id":   uuid.NewString(),
				"text":  opt,
				"votes": []interface{}{},
			})
		}
		record["poll"] = map[string]interface{}{
			"question":   asRawString(poll["question"]),
			"options":    options,
			"totalVotes": float64(0),
		}
	}

	s.posts = append([]map[string]interface{}{record}, s.posts...)
	return cloneRecord(record)
}

func pollOptionTexts(poll map[string]interface{}) []string {
	out := []string{}
	if opts, ok := poll["options"].([]interface{}); ok {
		for _, o := range opts {
			if s, ok := o.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// LikePost toggles userID's like and returns the updated like list.
func (s *Store) LikePost(postID, userID string) ([]interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post := s.findPost(postID)
	if post == nil {
		return nil, false
	}
	likes, _ := post["likes"].([]interface{})
	for i, like := range likes {
		if like == userID {
			post["likes"] = append(likes[:i:i], likes[i+1:]...)
			return cloneValue(post["likes"]).([]interface{}), true
		}
	}
	post["likes"] = append(likes, userID)
	return cloneValue(post["likes"]).([]interface{}), true
}

// CommentOnPost prepends a comment and returns its raw record.
func (s *Store) CommentOnPost(postID, userID, userName, text string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	post := s.findPost(postID)
	if post == nil {
		return nil
	}
	comment := map[string]interface{}{
		"_id":       uuid.NewString(),
		"userId":    userID,
		"userName":  userName,
		"text":      text,
		"createdAt": time.Now().UTC().Format(time.RFC3339),
		"likes":     []interface{}{},
	}
	comments, _ := post["comments"].([]interface{})
	post["comments"] = append([]interface{}{comment}, comments...)
	return cloneRecord(comment)
}

// VotePoll records userID's vote for an option and returns the updated
// raw poll. The totalVotes counter is bumped independently of the vote
// lists, preserving the divergence clients reconcile.
func (s *Store) VotePoll(postID, optionID, userID string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	post := s.findPost(postID)
	if post == nil {
		return nil
	}
	poll, ok := post["poll"].(map[string]interface{})
	if !ok {
		return nil
	}
	options, _ := poll["options"].([]interface{})
	voted := false
	for _, item := range options {
		opt, ok := item.(map[string]interface{})
		if !ok || asRawString(opt["_id"]) != optionID {
			continue
		}
		votes, _ := opt["votes"].([]interface{})
		for _, v := range votes {
			if v == userID {
				return cloneRecord(poll) // already voted
			}
		}
		opt["votes"] = append(votes, userID)
		voted = true
	}
	if voted {
		poll["totalVotes"] = asRawFloat(poll["totalVotes"]) + 1
		poll["userVotedOptionId"] = optionID
	}
	return cloneRecord(poll)
}

// UpdateProfile merges a patch into the stored user record.
func (s *Store) UpdateProfile(userID string, patch map[string]interface{}) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if asRawString(u["_id"]) != userID {
			continue
		}
		for k, v := range patch {
			if k == "_id" || k == "id" {
				continue
			}
			u[k] = v
		}
		return cloneRecord(u)
	}
	return nil
}

// Follow records actor following target; both directions of the toggle
// report whether the user exists.
func (s *Store) Follow(targetID, actorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findUser(targetID) == nil {
		return false
	}
	if s.follows[targetID] == nil {
		s.follows[targetID] = map[string]bool{}
	}
	s.follows[targetID][actorID] = true
	return true
}

func (s *Store) Unfollow(targetID, actorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findUser(targetID) == nil {
		return false
	}
	delete(s.follows[targetID], actorID)
	return true
}

// CreateStory appends a story and returns its raw record.
func (s *Store) CreateStory(body map[string]interface{}, author types.UserSnippet) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := map[string]interface{}{
		"_id":       uuid.NewString(),
		"userId":    author.ID,
		"userName":  author.Name,
		"caption":   asRawString(body["caption"]),
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	}
	for _, key := range []string{"image", "video"} {
		if v, ok := body[key]; ok && v != nil {
			record[key] = v
		}
	}
	s.stories = append([]map[string]interface{}{record}, s.stories...)
	return cloneRecord(record)
}

func (s *Store) findPost(id string) map[string]interface{} {
	for _, p := range s.posts {
		if asRawString(p["_id"]) == id {
			return p
		}
	}
	return nil
}

func (s *Store) findUser(id string) map[string]interface{} {
	for _, u := range s.users {
		if asRawString(u["_id"]) == id {
			return u
		}
	}
	return nil
}

// flatView exposes a business record's fields regardless of whether they
// sit at the top level or inside selectedApprovedBusiness.
func flatView(record map[string]interface{}) map[string]interface{} {
	nested, ok := record["selectedApprovedBusiness"].(map[string]interface{})
	if !ok {
		return record
	}
	view := map[string]interface{}{}
	for k, v := range record {
		view[k] = v
	}
	for k, v := range nested {
		if _, exists := view[k]; !exists {
			view[k] = v
		}
	}
	return view
}

func postAuthorID(p map[string]interface{}) string {
	if user, ok := p["user"].(map[string]interface{}); ok {
		return asRawString(user["_id"])
	}
	return asRawString(p["userId"])
}

func asRawString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asRawFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
