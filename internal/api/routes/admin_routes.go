package routes

import (
	"ats-api/internal/api/handlers"
	"ats-api/internal/api/middleware"
	"ats-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers account provisioning, admins only.
func RegisterAdminRoutes(
	rg *gin.RouterGroup,
	adminHandler handlers.AdminHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	admin := rg.Group("/admin")
	admin.Use(authMiddleware, middleware.Authorize(models.RoleAdmin))
	{
		admin.POST("/users", adminHandler.CreateUser)
	}
}
