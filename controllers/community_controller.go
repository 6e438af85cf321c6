package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/townbook/client-go/mockdata"
)

type CommunityController struct {
	Store *mockdata.Store
}

func NewCommunityController(store *mockdata.Store) *CommunityController {
	return &CommunityController{Store: store}
}

// GetPosts answers with the {posts} envelope.
func (cc *CommunityController) GetPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": cc.Store.Posts()})
}

func (cc *CommunityController) CreatePost(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := actor(c, stringField(body, "userId"), stringField(body, "userName"))
	if author.ID == "" {
		author.ID = "mock-user-1"
		author.Name = "Asha Verma"
	}

	record := cc.Store.CreatePost(body, author)
	c.JSON(http.StatusCreated, gin.H{"post": record})
}

// UploadMedia accepts a multipart file and answers with a fake CDN URL;
// nothing is persisted.
func (cc *CommunityController) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	ext := filepath.Ext(file.Filename)
	url := fmt.Sprintf("https://cdn.townbook.app/uploads/%s%s", uuid.NewString(), ext)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (cc *CommunityController) LikePost(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := actor(c, stringField(body, "userId"), "").ID
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	likes, ok := cc.Store.LikePost(c.Param("id"), userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "likes": likes})
}

func (cc *CommunityController) CommentOnPost(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	author := actor(c, stringField(body, "userId"), stringField(body, "userName"))
	text := stringField(body, "text")
	if author.ID == "" || text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and text are required"})
		return
	}

	comment := cc.Store.CommentOnPost(c.Param("id"), author.ID, author.Name, text)
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (cc *CommunityController) VotePoll(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := actor(c, stringField(body, "userId"), "").ID
	if userID == "" {
		userID = "mock-user-1"
	}

	poll := cc.Store.VotePoll(c.Param("id"), stringField(body, "optionId"), userID)
	if poll == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"poll": poll})
}

// Search answers with the {data:{posts,users}} envelope.
func (cc *CommunityController) Search(c *gin.Context) {
	posts, users := cc.Store.Search(c.Query("q"))
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"posts": posts, "users": users},
	})
}

func stringField(body map[string]interface{}, key string) string {
	s, _ := body[key].(string)
	return s
}
