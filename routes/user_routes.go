package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/controllers"
)

func SetupUserRoutes(api *gin.RouterGroup, userController *controllers.UserController) {
	api.GET("/admin/users/all", userController.GetUsers)

	users := api.Group("/users")
	{
		users.GET("/profile/:id", userController.GetProfile)
		users.PUT("/profile/:id", userController.UpdateProfile)
		users.GET("/posts/:id", userController.GetUserPosts)
		users.POST("/follow/:id", userController.Follow)
		users.POST("/unfollow/:id", userController.Unfollow)
		users.GET("/followers/:id", userController.GetFollowers)
		users.GET("/following/:id", userController.GetFollowing)
	}
}
