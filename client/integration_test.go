package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/townbook/client-go/mockdata"
	"github.com/townbook/client-go/routes"
	"github.com/townbook/client-go/types"
)

// roundTripClient hosts the bundled mock backend on an httptest server and
// returns a client pointed at it. The backend deliberately serves both the
// nested and the flat record shapes, so these tests cover the full
// request, envelope unwrap and transform pipeline.
func roundTripClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, mockdata.NewStore())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithLogger(quietLogger()))
}

func TestRoundTripBusinesses(t *testing.T) {
	c := roundTripClient(t)

	businesses := c.GetBusinesses(context.Background(), types.BusinessParams{})
	require.Len(t, businesses, len(mockdata.Businesses()))

	for _, b := range businesses {
		assert.NotEmpty(t, b.ID)
		assert.NotEmpty(t, b.BusinessName)
		assert.Contains(t, []string{types.StatusPending, types.StatusApproved, types.StatusRejected}, b.Status)
		assert.Contains(t, []string{types.FlagYes, types.FlagNo}, b.Facebook)
		assert.False(t, b.CreatedAt.IsZero())
	}

	// The nested shape and the flat shape must come out identical for the
	// same fixture data.
	want := mockdata.Businesses()
	for i, b := range businesses {
		assert.Equal(t, want[i].ID, b.ID)
		assert.Equal(t, want[i].BusinessName, b.BusinessName)
		assert.Equal(t, want[i].City, b.City)
		assert.Equal(t, want[i].Facebook, b.Facebook)
		assert.Equal(t, want[i].Status, b.Status)
	}
}

func TestRoundTripBusinessFilters(t *testing.T) {
	c := roundTripClient(t)

	pune := c.GetBusinesses(context.Background(), types.BusinessParams{City: "Pune"})
	require.NotEmpty(t, pune)
	for _, b := range pune {
		assert.Equal(t, "Pune", b.City)
	}

	none := c.GetBusinesses(context.Background(), types.BusinessParams{Search: "zzz-no-match"})
	assert.Empty(t, none)
}

func TestRoundTripBusinessByID(t *testing.T) {
	c := roundTripClient(t)

	b := c.GetBusinessByID(context.Background(), "mock-biz-1")
	require.NotNil(t, b)
	assert.Equal(t, "mock-biz-1", b.ID)

	// Unknown id: the backend 404s, the client falls back to mock data.
	missing := c.GetBusinessByID(context.Background(), "nope")
	require.NotNil(t, missing)
}

func TestRoundTripFeatured(t *testing.T) {
	c := roundTripClient(t)
	featured := c.GetFeaturedBusinesses(context.Background(), "")
	require.NotEmpty(t, featured)
	assert.LessOrEqual(t, len(featured), 6)
	for _, b := range featured {
		assert.True(t, b.Featured)
	}
}

func TestRoundTripCatalog(t *testing.T) {
	c := roundTripClient(t)
	assert.Equal(t, mockdata.Categories(), c.GetCategories(context.Background()))
	assert.Equal(t, mockdata.Services(), c.GetServices(context.Background()))
	assert.NotEmpty(t, c.GetActiveSliders(context.Background()))
}

func TestRoundTripFeed(t *testing.T) {
	c := roundTripClient(t)

	posts := c.GetPosts(context.Background())
	require.Len(t, posts, len(mockdata.Posts()))

	for _, p := range posts {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.User.ID)
		assert.False(t, p.LikedByMe)
		assert.NotNil(t, p.Likes)
		assert.NotNil(t, p.Comments)
	}

	// Post types survive the trip through the messy wire shapes.
	want := mockdata.Posts()
	for i, p := range posts {
		assert.Equal(t, want[i].Type, p.Type, "post %s", p.ID)
	}
}

func TestRoundTripCreatePost(t *testing.T) {
	c := roundTripClient(t)

	post, err := c.CreatePost(context.Background(), types.CreatePostData{
		Content: "fresh off the press",
	})
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "fresh off the press", post.Content)
	assert.Equal(t, types.PostTypeText, post.Type)

	// New post lands at the head of the feed.
	posts := c.GetPosts(context.Background())
	require.NotEmpty(t, posts)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestRoundTripLikeToggle(t *testing.T) {
	c := roundTripClient(t)

	first := c.LikePost(context.Background(), "mock-post-1", "mock-user-9")
	require.True(t, first.Success)
	assert.Contains(t, first.Likes, "mock-user-9")

	second := c.LikePost(context.Background(), "mock-post-1", "mock-user-9")
	require.True(t, second.Success)
	assert.NotContains(t, second.Likes, "mock-user-9")
}

func TestRoundTripComment(t *testing.T) {
	c := roundTripClient(t)

	comment := c.CommentOnPost(context.Background(), "mock-post-1", "mock-user-2", "Kunal Joshi", "great shot")
	require.NotNil(t, comment)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "great shot", comment.Content)
	assert.Equal(t, "mock-user-2", comment.User.ID)
}

func TestRoundTripVotePoll(t *testing.T) {
	c := roundTripClient(t)

	posts := c.GetPosts(context.Background())
	var pollPost *types.Post
	for i := range posts {
		if posts[i].Type == types.PostTypePoll {
			pollPost = &posts[i]
			break
		}
	}
	require.NotNil(t, pollPost, "seed feed must contain a poll post")
	require.NotNil(t, pollPost.Poll)
	require.NotEmpty(t, pollPost.Poll.Options)

	require.GreaterOrEqual(t, len(pollPost.Poll.Options), 2)
	before := pollPost.Poll.EffectiveTotalVotes()
	poll := c.VotePoll(context.Background(), pollPost.ID, pollPost.Poll.Options[1].ID)
	require.NotNil(t, poll)
	assert.Equal(t, before+1, poll.EffectiveTotalVotes())
}

func TestRoundTripSearch(t *testing.T) {
	c := roundTripClient(t)

	results := c.SearchCommunity(context.Background(), "asha")
	assert.NotEmpty(t, results.Users)

	empty := c.SearchCommunity(context.Background(), "zzz-no-match")
	assert.Empty(t, empty.Posts)
	assert.Empty(t, empty.Users)
}

func TestRoundTripUsers(t *testing.T) {
	c := roundTripClient(t)

	users := c.GetUsers(context.Background())
	require.NotEmpty(t, users)
	seen := map[string]bool{}
	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.False(t, seen[u.ID], "duplicate user id %s", u.ID)
		seen[u.ID] = true
	}
}

func TestRoundTripProfileAndFollow(t *testing.T) {
	c := roundTripClient(t)

	profile := c.GetUserProfile(context.Background(), "mock-user-1", "mock-user-2")
	require.NotNil(t, profile)
	assert.Equal(t, "mock-user-1", profile.ID)
	assert.True(t, profile.IsFollowing)

	assert.True(t, c.UnfollowUser(context.Background(), "mock-user-1", "mock-user-2"))
	after := c.GetUserProfile(context.Background(), "mock-user-1", "mock-user-2")
	require.NotNil(t, after)
	assert.False(t, after.IsFollowing)

	assert.True(t, c.FollowUser(context.Background(), "mock-user-1", "mock-user-2"))

	followers, err := c.GetFollowers(context.Background(), "mock-user-1", "")
	require.NoError(t, err)
	ids := []string{}
	for _, f := range followers {
		ids = append(ids, f.ID)
	}
	assert.Contains(t, ids, "mock-user-2")

	following, err := c.GetFollowing(context.Background(), "mock-user-2", "")
	require.NoError(t, err)
	require.NotEmpty(t, following)
}

func TestRoundTripUpdateProfile(t *testing.T) {
	c := roundTripClient(t)

	updated := c.UpdateUserProfile(context.Background(), "mock-user-1", map[string]interface{}{
		"bio": "street food cartographer",
	})
	require.NotNil(t, updated)
	assert.Equal(t, "street food cartographer", updated.Bio)
}

func TestRoundTripStories(t *testing.T) {
	c := roundTripClient(t)

	stories := c.GetStories(context.Background())
	require.NotEmpty(t, stories)

	created, err := c.CreateStory(context.Background(), types.CreateStoryData{
		Image:   "https://cdn/story.jpg",
		Caption: "evening market",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	after := c.GetStories(context.Background())
	assert.Len(t, after, len(stories)+1)
}

func TestRoundTripUserPosts(t *testing.T) {
	c := roundTripClient(t)

	posts := c.GetUserPosts(context.Background(), "mock-user-1")
	require.NotEmpty(t, posts)
	for _, p := range posts {
		assert.Equal(t, "mock-user-1", p.User.ID)
	}
}
