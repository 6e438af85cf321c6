package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/mockdata"
)

type UserController struct {
	Store *mockdata.Store
}

func NewUserController(store *mockdata.Store) *UserController {
	return &UserController{Store: store}
}

// GetUsers answers with a bare array, the admin listing's legacy shape.
func (uc *UserController) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, uc.Store.Users())
}

// GetProfile answers with the {data} envelope.
func (uc *UserController) GetProfile(c *gin.Context) {
	profile := uc.Store.Profile(c.Param("id"), c.Query("currentUserId"))
	if profile == nil {
		c.JSON(http.StatusNotFound, StandardResponse{Success: false, Message: "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile := uc.Store.UpdateProfile(c.Param("id"), patch)
	if profile == nil {
		c.JSON(http.StatusNotFound, StandardResponse{Success: false, Message: "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// GetUserPosts answers with the {posts} envelope.
func (uc *UserController) GetUserPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": uc.Store.UserPosts(c.Param("id"))})
}

func (uc *UserController) Follow(c *gin.Context) {
	uc.toggleFollow(c, uc.Store.Follow)
}

func (uc *UserController) Unfollow(c *gin.Context) {
	uc.toggleFollow(c, uc.Store.Unfollow)
}

func (uc *UserController) toggleFollow(c *gin.Context, apply func(targetID, actorID string) bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actorID := actor(c, stringField(body, "userId"), "").ID
	if actorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "userId is required"})
		return
	}
	if !apply(c.Param("id"), actorID) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetFollowers answers with the {users} envelope.
func (uc *UserController) GetFollowers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": uc.Store.Followers(c.Param("id"))})
}

// GetFollowing answers with the {users} envelope.
func (uc *UserController) GetFollowing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": uc.Store.Following(c.Param("id"))})
}
