package routes

import (
	"log"

	"ats-api/internal/api/handlers"
	"ats-api/internal/api/middleware"
	"ats-api/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	api := router.Group("/api")

	authHandler := handlers.NewAuthHandler(app.UserService, app.Validator)
	adminHandler := handlers.NewAdminHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	resumeHandler := handlers.NewResumeHandler(app.ResumeService)

	authMiddleware := middleware.Authenticate(app.Tokens, app.UserService)

	RegisterAuthRoutes(api, authHandler, authMiddleware)
	RegisterAdminRoutes(api, adminHandler, authMiddleware)
	RegisterJobRoutes(api, jobHandler, authMiddleware)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)
	RegisterResumeRoutes(api, resumeHandler, authMiddleware, app.Config.Upload)

	router.Static(middleware.UploadsURLPrefix, app.Config.Upload.Dir)

	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.ReadinessCheck(app.Readiness))

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
