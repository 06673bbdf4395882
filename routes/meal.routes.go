package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Use(middleware.AuthMiddleware())
	{
		mealRoutes.POST("/", mealController.CreateMeal)
		mealRoutes.PUT("/:id", mealController.UpdateMeal)
		mealRoutes.DELETE("/:id", mealController.DeleteMeal)
		mealRoutes.POST("/:id/copy", mealController.CopyMeal)
		mealRoutes.GET("/user/:user_id", mealController.GetMealHistory)
		mealRoutes.GET("/user/:user_id/today", mealController.GetDailySummary)
	}
}
