package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/mockdata"
)

type BusinessController struct {
	Store *mockdata.Store
}

func NewBusinessController(store *mockdata.Store) *BusinessController {
	return &BusinessController{Store: store}
}

// GetBusinesses answers with the {businesses} envelope.
func (bc *BusinessController) GetBusinesses(c *gin.Context) {
	records := bc.Store.Businesses(
		c.Query("status"),
		c.Query("city"),
		c.Query("category"),
		c.Query("search"),
	)
	c.JSON(http.StatusOK, gin.H{"businesses": records})
}

// GetFeatured answers with the {data} envelope.
func (bc *BusinessController) GetFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": bc.Store.Featured(c.Query("city"))})
}

// GetBusinessByID answers with the {success,data} envelope.
func (bc *BusinessController) GetBusinessByID(c *gin.Context) {
	record := bc.Store.Business(c.Param("id"))
	if record == nil {
		c.JSON(http.StatusNotFound, StandardResponse{Success: false, Message: "Business not found"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: record})
}

// GetCategories answers with the {categories} envelope.
func (bc *BusinessController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": mockdata.Categories()})
}

// GetServices answers with the {services} envelope.
func (bc *BusinessController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": mockdata.Services()})
}

// GetUserBusinesses answers with a bare array.
func (bc *BusinessController) GetUserBusinesses(c *gin.Context) {
	c.JSON(http.StatusOK, bc.Store.UserBusinesses(c.Param("id")))
}

// GetActiveSliders answers with the {data} envelope.
func (bc *BusinessController) GetActiveSliders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": mockdata.Sliders()})
}
