package routes

import (
	"ats-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login and the current-user route.
// Only /me requires a token.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware, authHandler.Me)
	}
}
