package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router *gin.Engine, workoutController *controllers.WorkoutController) {
	workoutRoutes := router.Group("/workouts")
	workoutRoutes.Use(middleware.AuthMiddleware())
	{
		workoutRoutes.POST("/", workoutController.CreateWorkout)
		workoutRoutes.GET("/user/:user_id", workoutController.GetWorkoutsByUserID)
		workoutRoutes.DELETE("/:id", workoutController.DeleteWorkout)
		workoutRoutes.POST("/:id/complete", workoutController.CompleteWorkout)
		workoutRoutes.GET("/user/:user_id/streak", workoutController.GetStreak)
	}
}
