package routes

import (
	"ats-api/internal/api/handlers"
	"ats-api/internal/api/middleware"
	"ats-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to job applications.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	appHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	studentsOnly := middleware.Authorize(models.RoleStudent)
	recruitersAndAdmins := middleware.Authorize(models.RoleRecruiter, models.RoleAdmin)

	apps := rg.Group("/applications")
	apps.Use(authMiddleware)
	{
		apps.POST("/apply/:jobId", studentsOnly, appHandler.Apply)
		apps.GET("/me", studentsOnly, appHandler.ListMine)
		apps.GET("/job/:jobId", recruitersAndAdmins, appHandler.ListByJob)
		apps.PUT("/:appId/status", recruitersAndAdmins, appHandler.UpdateStatus)
		apps.GET("/:appId/history", recruitersAndAdmins, appHandler.History)
	}
}
