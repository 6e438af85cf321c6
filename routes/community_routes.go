package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/controllers"
)

func SetupCommunityRoutes(api *gin.RouterGroup, communityController *controllers.CommunityController) {
	community := api.Group("/community")
	{
		community.GET("/all", communityController.GetPosts)
		community.POST("/create", communityController.CreatePost)
		community.POST("/upload", communityController.UploadMedia)
		community.PUT("/like/:id", communityController.LikePost)
		community.POST("/comment/:id", communityController.CommentOnPost)
		community.POST("/vote/:id", communityController.VotePoll)
		community.GET("/search", communityController.Search)
	}
}
