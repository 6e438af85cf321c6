package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/controllers"
)

func SetupBusinessRoutes(api *gin.RouterGroup, businessController *controllers.BusinessController) {
	api.GET("/sliders/active", businessController.GetActiveSliders)

	admin := api.Group("/admin")
	{
		admin.GET("/business/all", businessController.GetBusinesses)
		admin.GET("/business/get/:id", businessController.GetBusinessByID)
		admin.GET("/featured/all", businessController.GetFeatured)
		admin.GET("/alter/categories", businessController.GetCategories)
		admin.GET("/alter/services", businessController.GetServices)
	}

	api.GET("/users/businesses/:id", businessController.GetUserBusinesses)
}
