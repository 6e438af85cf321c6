package types

import "time"

// UserProfile is the canonical public profile shape.
type UserProfile struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Bio           string `json:"bio"`
	Location      string `json:"location"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	AadhaarNumber string `json:"aadhaarNumber"`
	AadhaarImage  string `json:"aadhaarImage"`
	Pincode       string `json:"pincode"`
	Email         string `json:"email"`
	Country       string `json:"country"`

	FollowersCount int  `json:"followersCount"`
	FollowingCount int  `json:"followingCount"`
	IsFollowing    bool `json:"isFollowing"`
	PostsCount     int  `json:"postsCount"`

	JoinedAt time.Time `json:"joinedAt"`
}

// AuthUser is the normalized signed-in user persisted alongside the bearer
// token. Avatar is guaranteed non-empty after normalization.
type AuthUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}
