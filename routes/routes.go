package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/controllers"
	"github.com/townbook/client-go/middleware"
	"github.com/townbook/client-go/mockdata"
)

// SetupRoutes wires the mock backend's endpoints, matching the paths the
// production API exposes.
func SetupRoutes(r *gin.Engine, store *mockdata.Store) {
	// Initialize controllers
	businessController := controllers.NewBusinessController(store)
	communityController := controllers.NewCommunityController(store)
	userController := controllers.NewUserController(store)
	storyController := controllers.NewStoryController(store)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth())
	{
		SetupBusinessRoutes(api, businessController)
		SetupCommunityRoutes(api, communityController)
		SetupUserRoutes(api, userController)
		SetupStoryRoutes(api, storyController)
	}
}
