package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/controllers"
)

func SetupStoryRoutes(api *gin.RouterGroup, storyController *controllers.StoryController) {
	stories := api.Group("/stories")
	{
		stories.GET("", storyController.GetStories)
		stories.POST("", storyController.CreateStory)
	}
}
