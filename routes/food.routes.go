package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController) {
	foodRoutes := router.Group("/foods")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.GET("/search", foodController.SearchFood)
		foodRoutes.GET("/lookup", foodController.LookupFood)
	}
}
