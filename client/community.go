package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/townbook/client-go/mockdata"
	"github.com/townbook/client-go/transform"
	"github.com/townbook/client-go/types"
)

// GetPosts returns the community feed, newest first as served by the
// backend. The static mock feed stands in when the backend is down.
func (c *Client) GetPosts(ctx context.Context) []types.Post {
	v, err := c.do(ctx, http.MethodGet, "/api/community/all", nil, nil)
	if err != nil {
		c.warn("/api/community/all", err)
		return mockdata.Posts()
	}
	return transform.PostArray(listPayload(v, "posts", "data"))
}

// CreatePost publishes a new post. Unlike reads, failures propagate so
// the caller can show an error state instead of silently dropping the
// user's content.
func (c *Client) CreatePost(ctx context.Context, data types.CreatePostData) (*types.Post, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/community/create", nil, data)
	if err != nil {
		return nil, err
	}
	payload := objectPayload(v, "post", "data")
	if payload == nil {
		return nil, fmt.Errorf("POST /api/community/create: empty response")
	}
	post := transform.Post(payload)
	return &post, nil
}

// UploadCommunityMedia uploads one media file and returns its public URL,
// or an empty string when the upload fails. Upload failures are logged,
// not surfaced; composers treat a missing URL as "attach nothing".
func (c *Client) UploadCommunityMedia(ctx context.Context, filename string, r io.Reader) string {
	v, err := c.doMultipart(ctx, "/api/community/upload", "file", filename, r)
	if err != nil {
		c.warn("/api/community/upload", err)
		return ""
	}
	if m, ok := v.(map[string]interface{}); ok {
		if s, ok := m["url"].(string); ok {
			return s
		}
		if data, ok := m["data"].(map[string]interface{}); ok {
			if s, ok := data["url"].(string); ok {
				return s
			}
		}
	}
	return ""
}

// LikePost toggles the caller's like on a post and returns the updated
// like list. A failed call reports success=false with no likes.
func (c *Client) LikePost(ctx context.Context, postID, userID string) types.LikeResult {
	body := map[string]string{"userId": userID}
	v, err := c.do(ctx, http.MethodPut, "/api/community/like/"+url.PathEscape(postID), nil, body)
	if err != nil {
		c.warn("/api/community/like", err)
		return types.LikeResult{Success: false, Likes: []string{}}
	}

	result := types.LikeResult{Likes: []string{}}
	if m, ok := v.(map[string]interface{}); ok {
		success, ok := m["success"].(bool)
		result.Success = !ok || success
		if likes := listPayload(m["likes"]); likes != nil {
			for _, item := range likes.([]interface{}) {
				if s, ok := item.(string); ok && s != "" {
					result.Likes = append(result.Likes, s)
				}
			}
		}
	}
	return result
}

// CommentOnPost appends a comment and returns the canonical comment
// record, or nil when the call fails.
func (c *Client) CommentOnPost(ctx context.Context, postID, userID, userName, text string) *types.CommunityComment {
	body := map[string]string{"userId": userID, "userName": userName, "text": text}
	v, err := c.do(ctx, http.MethodPost, "/api/community/comment/"+url.PathEscape(postID), nil, body)
	if err != nil {
		c.warn("/api/community/comment", err)
		return nil
	}
	payload := objectPayload(v, "comment", "data")
	if payload == nil {
		return nil
	}
	comment := transform.Comment(payload)
	return &comment
}

// VotePoll casts a vote and returns the updated poll, or nil when the
// call fails.
func (c *Client) VotePoll(ctx context.Context, postID, optionID string) *types.Poll {
	body := map[string]string{"optionId": optionID}
	v, err := c.do(ctx, http.MethodPost, "/api/community/vote/"+url.PathEscape(postID), nil, body)
	if err != nil {
		c.warn("/api/community/vote", err)
		return nil
	}
	payload := objectPayload(v, "poll", "data")
	if payload == nil {
		return nil
	}
	poll := transform.Poll(payload)
	return &poll
}

// SearchCommunity searches posts and users in one call. Empty results on
// failure.
func (c *Client) SearchCommunity(ctx context.Context, q string) types.SearchResults {
	query := url.Values{}
	query.Set("q", q)

	empty := types.SearchResults{Posts: []types.Post{}, Users: []types.UserSnippet{}}
	v, err := c.do(ctx, http.MethodGet, "/api/community/search", query, nil)
	if err != nil {
		c.warn("/api/community/search", err)
		return empty
	}

	payload := objectPayload(v, "data")
	if payload == nil {
		return empty
	}
	return types.SearchResults{
		Posts: transform.PostArray(listPayload(payload["posts"])),
		Users: transform.UserSnippetArray(listPayload(payload["users"])),
	}
}

// GetStories returns active stories; empty on failure, no mock fallback.
func (c *Client) GetStories(ctx context.Context) []types.Story {
	v, err := c.do(ctx, http.MethodGet, "/api/stories", nil, nil)
	if err != nil {
		c.warn("/api/stories", err)
		return []types.Story{}
	}
	return transform.StoryArray(listPayload(v, "stories", "data"))
}

// CreateStory publishes a story. Failures propagate, mirroring
// CreatePost.
func (c *Client) CreateStory(ctx context.Context, data types.CreateStoryData) (*types.Story, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/stories", nil, data)
	if err != nil {
		return nil, err
	}
	payload := objectPayload(v, "story", "data")
	if payload == nil {
		return nil, fmt.Errorf("POST /api/stories: empty response")
	}
	story := transform.Story(payload)
	return &story, nil
}
