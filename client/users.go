package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/townbook/client-go/transform"
	"github.com/townbook/client-go/types"
)

// GetUsers lists community members, deduplicated by id. Records with a
// missing id, or the literal strings "undefined"/"null" that leak out of
// the backend, are dropped.
func (c *Client) GetUsers(ctx context.Context) []types.UserSnippet {
	v, err := c.do(ctx, http.MethodGet, "/api/admin/users/all", nil, nil)
	if err != nil {
		c.warn("/api/admin/users/all", err)
		return []types.UserSnippet{}
	}

	seen := map[string]bool{}
	users := []types.UserSnippet{}
	for _, u := range transform.UserSnippetArray(listPayload(v, "users", "data")) {
		if u.ID == "" || u.ID == "undefined" || u.ID == "null" || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		users = append(users, u)
	}
	return users
}

// GetUserProfile fetches one profile. currentUserID, when set, lets the
// backend fill isFollowing for the viewer. Nil on failure.
func (c *Client) GetUserProfile(ctx context.Context, userID, currentUserID string) *types.UserProfile {
	query := url.Values{}
	if currentUserID != "" {
		query.Set("currentUserId", currentUserID)
	}

	v, err := c.do(ctx, http.MethodGet, "/api/users/profile/"+url.PathEscape(userID), query, nil)
	if err != nil {
		c.warn("/api/users/profile", err)
		return nil
	}
	payload := objectPayload(v, "user", "data")
	if payload == nil {
		return nil
	}
	profile := transform.UserProfile(payload)
	return &profile
}

// UpdateUserProfile applies a partial profile update and returns the
// refreshed profile, or nil when the call fails.
func (c *Client) UpdateUserProfile(ctx context.Context, userID string, patch map[string]interface{}) *types.UserProfile {
	v, err := c.do(ctx, http.MethodPut, "/api/users/profile/"+url.PathEscape(userID), nil, patch)
	if err != nil {
		c.warn("/api/users/profile", err)
		return nil
	}
	payload := objectPayload(v, "user", "data")
	if payload == nil {
		return nil
	}
	profile := transform.UserProfile(payload)
	return &profile
}

// GetUserPosts lists one user's posts; empty on failure.
func (c *Client) GetUserPosts(ctx context.Context, userID string) []types.Post {
	v, err := c.do(ctx, http.MethodGet, "/api/users/posts/"+url.PathEscape(userID), nil, nil)
	if err != nil {
		c.warn("/api/users/posts", err)
		return []types.Post{}
	}
	return transform.PostArray(listPayload(v, "posts", "data"))
}

// FollowUser makes actorID follow targetID and reports whether the
// backend accepted it.
func (c *Client) FollowUser(ctx context.Context, targetID, actorID string) bool {
	return c.follow(ctx, "/api/users/follow/", targetID, actorID)
}

// UnfollowUser reverses FollowUser.
func (c *Client) UnfollowUser(ctx context.Context, targetID, actorID string) bool {
	return c.follow(ctx, "/api/users/unfollow/", targetID, actorID)
}

func (c *Client) follow(ctx context.Context, prefix, targetID, actorID string) bool {
	body := map[string]string{"userId": actorID}
	v, err := c.do(ctx, http.MethodPost, prefix+url.PathEscape(targetID), nil, body)
	if err != nil {
		c.warn(prefix, err)
		return false
	}
	if m, ok := v.(map[string]interface{}); ok {
		if success, ok := m["success"].(bool); ok {
			return success
		}
	}
	// A 2xx with no recognizable envelope still counts as accepted.
	return true
}

// GetFollowers lists the followers of userID. Request errors propagate;
// this pair of calls has no graceful fallback.
func (c *Client) GetFollowers(ctx context.Context, userID, currentUserID string) ([]types.UserSnippet, error) {
	return c.followList(ctx, "/api/users/followers/", userID, currentUserID)
}

// GetFollowing lists the accounts userID follows. Errors propagate, as
// with GetFollowers.
func (c *Client) GetFollowing(ctx context.Context, userID, currentUserID string) ([]types.UserSnippet, error) {
	return c.followList(ctx, "/api/users/following/", userID, currentUserID)
}

func (c *Client) followList(ctx context.Context, prefix, userID, currentUserID string) ([]types.UserSnippet, error) {
	query := url.Values{}
	if currentUserID != "" {
		query.Set("currentUserId", currentUserID)
	}
	v, err := c.do(ctx, http.MethodGet, prefix+url.PathEscape(userID), query, nil)
	if err != nil {
		return nil, err
	}
	return transform.UserSnippetArray(listPayload(v, "users", "followers", "following", "data")), nil
}
