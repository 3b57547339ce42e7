package routes

import (
	"ats-api/internal/api/handlers"
	"ats-api/internal/api/middleware"
	"ats-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// Every job route requires a token; posting is limited to recruiters and admins.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", middleware.Authorize(models.RoleRecruiter, models.RoleAdmin), jobHandler.CreateJob)
		jobs.GET("/:id", jobHandler.GetJobByID)
	}
}
