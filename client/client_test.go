package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/townbook/client-go/mockdata"
	"github.com/townbook/client-go/session"
	"github.com/townbook/client-go/types"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// deadClient points at a server that no longer exists, so every request
// fails at the transport layer.
func deadClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	return New(srv.URL, WithLogger(quietLogger()))
}

func jsonServer(t *testing.T, status int, body interface{}) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, New(srv.URL, WithLogger(quietLogger()))
}

func TestGetBusinessesFallsBackToMock(t *testing.T) {
	c := deadClient(t)
	businesses := c.GetBusinesses(context.Background(), types.BusinessParams{})
	assert.Equal(t, mockdata.Businesses(), businesses)
}

func TestGetBusinessesServerErrorFallsBack(t *testing.T) {
	_, c := jsonServer(t, http.StatusInternalServerError, map[string]string{"error": "boom"})
	businesses := c.GetBusinesses(context.Background(), types.BusinessParams{})
	assert.Equal(t, mockdata.Businesses(), businesses)
}

func TestGetBusinessesEnvelopes(t *testing.T) {
	record := map[string]interface{}{"_id": "b1", "businessName": "Acme"}

	envelopes := map[string]interface{}{
		"businesses key": map[string]interface{}{"businesses": []interface{}{record}},
		"data key":       map[string]interface{}{"data": []interface{}{record}},
		"bare array":     []interface{}{record},
	}

	for name, body := range envelopes {
		t.Run(name, func(t *testing.T) {
			_, c := jsonServer(t, http.StatusOK, body)
			businesses := c.GetBusinesses(context.Background(), types.BusinessParams{})
			require.Len(t, businesses, 1)
			assert.Equal(t, "Acme", businesses[0].BusinessName)
		})
	}
}

func TestGetFeaturedBusinessesCap(t *testing.T) {
	records := []interface{}{}
	for i := 0; i < 10; i++ {
		records = append(records, map[string]interface{}{"_id": fmt.Sprintf("b%d", i)})
	}
	_, c := jsonServer(t, http.StatusOK, map[string]interface{}{"data": records})

	featured := c.GetFeaturedBusinesses(context.Background(), "")
	assert.Len(t, featured, 6)
}

func TestGetBusinessByIDFallback(t *testing.T) {
	c := deadClient(t)

	known := c.GetBusinessByID(context.Background(), "mock-biz-2")
	require.NotNil(t, known)
	assert.Equal(t, "mock-biz-2", known.ID)

	unknown := c.GetBusinessByID(context.Background(), "no-such-id")
	require.NotNil(t, unknown)
	assert.Equal(t, mockdata.Businesses()[0].ID, unknown.ID)
}

func TestGetBusinessByIDEnvelopes(t *testing.T) {
	t.Run("wrapped object", func(t *testing.T) {
		_, c := jsonServer(t, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"_id": "b1", "businessName": "Acme"},
		})
		b := c.GetBusinessByID(context.Background(), "b1")
		require.NotNil(t, b)
		assert.Equal(t, "Acme", b.BusinessName)
	})

	t.Run("null data means not found", func(t *testing.T) {
		_, c := jsonServer(t, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    nil,
		})
		assert.Nil(t, c.GetBusinessByID(context.Background(), "b1"))
	})

	t.Run("null named key means not found", func(t *testing.T) {
		_, c := jsonServer(t, http.StatusOK, map[string]interface{}{
			"business": nil,
		})
		assert.Nil(t, c.GetBusinessByID(context.Background(), "b1"))
	})
}

func TestGetUserProfileNullPayload(t *testing.T) {
	_, c := jsonServer(t, http.StatusOK, map[string]interface{}{"data": nil})
	assert.Nil(t, c.GetUserProfile(context.Background(), "u1", ""))
}

func TestSearchBusinessesDelegates(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/api/admin/business/all", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"businesses": []interface{}{}})
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(quietLogger()))
	c.SearchBusinesses(context.Background(), "chai", "Pune")

	assert.Contains(t, gotQuery, "search=chai")
	assert.Contains(t, gotQuery, "city=Pune")
}

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]interface{}{})
	}))
	defer srv.Close()

	t.Run("token present", func(t *testing.T) {
		c := New(srv.URL,
			WithLogger(quietLogger()),
			WithSession(session.Static{AuthToken: "tok-123"}),
		)
		c.GetPosts(context.Background())
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("no token, no header", func(t *testing.T) {
		c := New(srv.URL, WithLogger(quietLogger()))
		c.GetPosts(context.Background())
		assert.Equal(t, "", gotAuth)
	})
}

func TestCreatePostPropagatesError(t *testing.T) {
	c := deadClient(t)
	post, err := c.CreatePost(context.Background(), types.CreatePostData{Content: "hello"})
	require.Error(t, err)
	assert.Nil(t, post)
}

func TestCreatePostSuccess(t *testing.T) {
	_, c := jsonServer(t, http.StatusCreated, map[string]interface{}{
		"post": map[string]interface{}{"_id": "p1", "content": "hello"},
	})
	post, err := c.CreatePost(context.Background(), types.CreatePostData{Content: "hello"})
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, "hello", post.Content)
}

func TestCreateStoryPropagatesError(t *testing.T) {
	c := deadClient(t)
	story, err := c.CreateStory(context.Background(), types.CreateStoryData{Caption: "hi"})
	require.Error(t, err)
	assert.Nil(t, story)
}

func TestGetPostsFallsBackToMock(t *testing.T) {
	c := deadClient(t)
	assert.Equal(t, mockdata.Posts(), c.GetPosts(context.Background()))
}

func TestLikePostFailure(t *testing.T) {
	c := deadClient(t)
	result := c.LikePost(context.Background(), "p1", "u1")
	assert.False(t, result.Success)
	assert.Equal(t, []string{}, result.Likes)
}

func TestLikePostSuccess(t *testing.T) {
	_, c := jsonServer(t, http.StatusOK, map[string]interface{}{
		"success": true,
		"likes":   []interface{}{"u1", "u2"},
	})
	result := c.LikePost(context.Background(), "p1", "u1")
	assert.True(t, result.Success)
	assert.Equal(t, []string{"u1", "u2"}, result.Likes)
}

func TestCommentOnPostFailureReturnsNil(t *testing.T) {
	c := deadClient(t)
	assert.Nil(t, c.CommentOnPost(context.Background(), "p1", "u1", "Asha", "hi"))
}

func TestVotePollFailureReturnsNil(t *testing.T) {
	c := deadClient(t)
	assert.Nil(t, c.VotePoll(context.Background(), "p1", "o1"))
}

func TestSearchCommunityFailureReturnsEmpty(t *testing.T) {
	c := deadClient(t)
	results := c.SearchCommunity(context.Background(), "chai")
	assert.Empty(t, results.Posts)
	assert.Empty(t, results.Users)
	assert.NotNil(t, results.Posts)
	assert.NotNil(t, results.Users)
}

func TestGetUsersDedupeAndFilter(t *testing.T) {
	_, c := jsonServer(t, http.StatusOK, []interface{}{
		map[string]interface{}{"_id": "u1", "userName": "Asha"},
		map[string]interface{}{"_id": "u1", "userName": "Asha again"},
		map[string]interface{}{"_id": "undefined", "userName": "Ghost"},
		map[string]interface{}{"_id": "null", "userName": "Ghost 2"},
		map[string]interface{}{"userName": "No id"},
		map[string]interface{}{"_id": "u2", "userName": "Kunal"},
	})

	users := c.GetUsers(context.Background())
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)
}

func TestGetUserProfileFailureReturnsNil(t *testing.T) {
	c := deadClient(t)
	assert.Nil(t, c.GetUserProfile(context.Background(), "u1", ""))
}

func TestFollowUserFailureReturnsFalse(t *testing.T) {
	c := deadClient(t)
	assert.False(t, c.FollowUser(context.Background(), "u1", "u2"))
	assert.False(t, c.UnfollowUser(context.Background(), "u1", "u2"))
}

func TestGetFollowersPropagatesError(t *testing.T) {
	c := deadClient(t)
	_, err := c.GetFollowers(context.Background(), "u1", "")
	require.Error(t, err)
	_, err = c.GetFollowing(context.Background(), "u1", "")
	require.Error(t, err)
}

func TestGetStoriesFailureReturnsEmpty(t *testing.T) {
	c := deadClient(t)
	stories := c.GetStories(context.Background())
	assert.NotNil(t, stories)
	assert.Empty(t, stories)
}

func TestUploadCommunityMedia(t *testing.T) {
	t.Run("success returns url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, header, err := r.FormFile("file")
			require.NoError(t, err)
			assert.Equal(t, "pic.jpg", header.Filename)
			_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn/pic.jpg"})
		}))
		defer srv.Close()

		c := New(srv.URL, WithLogger(quietLogger()))
		url := c.UploadCommunityMedia(context.Background(), "pic.jpg", strings.NewReader("bytes"))
		assert.Equal(t, "https://cdn/pic.jpg", url)
	})

	t.Run("failure returns empty string", func(t *testing.T) {
		c := deadClient(t)
		url := c.UploadCommunityMedia(context.Background(), "pic.jpg", strings.NewReader("bytes"))
		assert.Equal(t, "", url)
	})
}

func TestGetUserBusinessesFailureReturnsEmpty(t *testing.T) {
	c := deadClient(t)
	businesses := c.GetUserBusinesses(context.Background(), "u1")
	assert.NotNil(t, businesses)
	assert.Empty(t, businesses)
}
