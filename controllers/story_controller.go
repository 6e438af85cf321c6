package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/mockdata"
)

type StoryController struct {
	Store *mockdata.Store
}

func NewStoryController(store *mockdata.Store) *StoryController {
	return &StoryController{Store: store}
}

// GetStories answers with the {stories} envelope.
func (sc *StoryController) GetStories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stories": sc.Store.Stories()})
}

func (sc *StoryController) CreateStory(c *gin.Context) {
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
	c.JSON(http.StatusCreated, gin.H{"story": sc.Store.CreateStory(body, author)})
}
