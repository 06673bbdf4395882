package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTargetRoutes(router *gin.Engine, targetController *controllers.TargetController) {
	targetRoutes := router.Group("/targets")
	targetRoutes.Use(middleware.AuthMiddleware())
	{
		targetRoutes.POST("/preview", targetController.PreviewTargets)
		targetRoutes.POST("/", targetController.CreateTargets)
		targetRoutes.GET("/user/:user_id", targetController.GetLatestTarget)
	}
}
