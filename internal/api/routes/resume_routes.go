package routes

import (
	"ats-api/config"
	"ats-api/internal/api/handlers"
	"ats-api/internal/api/middleware"
	"ats-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterResumeRoutes registers the resume upload. The upload middleware
// runs after the role gate so anonymous bodies are never written to disk.
func RegisterResumeRoutes(
	rg *gin.RouterGroup,
	resumeHandler handlers.ResumeHandlerInterface,
	authMiddleware gin.HandlerFunc,
	uploadCfg config.UploadConfig,
) {
	resumes := rg.Group("/resumes")
	resumes.Use(authMiddleware, middleware.Authorize(models.RoleStudent))
	{
		resumes.POST("/upload", middleware.ResumeUpload(uploadCfg), resumeHandler.Upload)
	}
}
