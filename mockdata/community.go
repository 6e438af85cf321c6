package mockdata

import (
	"time"

	"github.com/townbook/client-go/types"
)

var mockUsers = []types.UserSnippet{
	{ID: "mock-user-1", Name: "Asha Verma", Avatar: "https://cdn.townbook.app/demo/avatars/asha.png"},
	{ID: "mock-user-2", Name: "Kunal Joshi", Avatar: "https://cdn.townbook.app/demo/avatars/kunal.png"},
	{ID: "mock-user-3", Name: "Fatima Shaikh", Avatar: "https://cdn.townbook.app/demo/avatars/fatima.png"},
}

var posts = []types.Post{
	{
		ID:      "mock-post-1",
		User:    mockUsers[0],
		Content: "Just found the best misal pav near the station. Highly recommend!",
		Type:    types.PostTypeImage,
		Images:  []string{"https://cdn.townbook.app/demo/posts/misal.jpg"},
		Likes:   []string{"mock-user-2", "mock-user-3"},
		Comments: []types.CommunityComment{
			{
				ID:        "mock-comment-1",
				User:      mockUsers[1],
				Content:   "Which stall? Dropping by tomorrow.",
				CreatedAt: fixtureTime.Add(30 * time.Minute),
				Likes:     []string{},
			},
		},
		TaggedUsers: []types.TaggedUser{},
		CreatedAt:   fixtureTime,
		UpdatedAt:   fixtureTime,
	},
	{
		ID:      "mock-post-2",
		User:    mockUsers[1],
		Content: "Where should the next street-food walk happen?",
		Type:    types.PostTypePoll,
		Images:  []string{},
		Poll: &types.Poll{
			Question: "Where should the next street-food walk happen?",
			Options: []types.PollOption{
				{ID: "mock-opt-1", Text: "FC Road", Votes: []string{"mock-user-1"}},
				{ID: "mock-opt-2", Text: "Camp", Votes: []string{"mock-user-3"}},
				{ID: "mock-opt-3", Text: "Kothrud", Votes: []string{}},
			},
			TotalVotes: 2,
		},
		Likes:       []string{"mock-user-1"},
		Comments:    []types.CommunityComment{},
		TaggedUsers: []types.TaggedUser{},
		CreatedAt:   fixtureTime.Add(-2 * time.Hour),
		UpdatedAt:   fixtureTime.Add(-2 * time.Hour),
	},
	{
		ID:          "mock-post-3",
		User:        mockUsers[2],
		Content:     "Evening aarti at the riverside, so peaceful.",
		Type:        types.PostTypeVideo,
		Images:      []string{},
		Video:       "https://cdn.townbook.app/demo/posts/aarti.mp4",
		Likes:       []string{},
		Comments:    []types.CommunityComment{},
		TaggedUsers: []types.TaggedUser{},
		Feeling:     "blessed",
		Location:    &types.PostLocation{Name: "Riverside Ghat"},
		CreatedAt:   fixtureTime.Add(-26 * time.Hour),
		UpdatedAt:   fixtureTime.Add(-26 * time.Hour),
	},
}

var stories = []types.Story{
	{
		ID:        "mock-story-1",
		User:      mockUsers[0],
		Image:     "https://cdn.townbook.app/demo/stories/market.jpg",
		Caption:   "Morning market haul",
		CreatedAt: fixtureTime.Add(-3 * time.Hour),
	},
	{
		ID:        "mock-story-2",
		User:      mockUsers[2],
		Video:     "https://cdn.townbook.app/demo/stories/chai.mp4",
		CreatedAt: fixtureTime.Add(-5 * time.Hour),
	},
}

// Posts returns a fresh copy of the fallback feed.
func Posts() []types.Post {
	out := make([]types.Post, len(posts))
	copy(out, posts)
	return out
}

func Users() []types.UserSnippet {
	out := make([]types.UserSnippet, len(mockUsers))
	copy(out, mockUsers)
	return out
}

func Stories() []types.Story {
	out := make([]types.Story, len(stories))
	copy(out, stories)
	return out
}
