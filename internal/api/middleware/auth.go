package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"ats-api/internal/auth"
	"ats-api/internal/models"
	"ats-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "currentUser" // Key to store the authenticated user in context
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserLookup loads the account a token was issued for.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Authenticate verifies the bearer token, loads the user it names and stores
// the user in the context. Any failure aborts with 401.
func Authenticate(tokens TokenVerifier, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		headerParts := strings.Fields(authHeader)
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
			log.Println("Auth middleware: Invalid Authorization header format")
			abortWithMessage(c, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := tokens.Verify(headerParts[1])
		if err != nil {
			log.Printf("Auth middleware: Error verifying token: %v", err)
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				abortWithMessage(c, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, auth.ErrTokenMissing):
				abortWithMessage(c, http.StatusUnauthorized, "Authorization header required")
			default:
				abortWithMessage(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				log.Printf("Auth middleware: Token for deleted user %s", claims.UserID)
				abortWithMessage(c, http.StatusUnauthorized, "User not found")
				return
			}
			log.Printf("Auth middleware: Error loading user %s: %v", claims.UserID, err)
			abortWithMessage(c, http.StatusInternalServerError, "Failed to authenticate")
			return
		}

		c.Set(userCtx, user)
		c.Next()
	}
}

// Authorize admits only users whose role is listed. It must run after
// Authenticate; a request without a user is treated as unauthenticated.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithMessage(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			log.Printf("Auth middleware: Role %s denied on %s %s", user.Role, c.Request.Method, c.FullPath())
			abortWithMessage(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userCtx)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// SetCurrentUser stores user as the authenticated caller.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userCtx, user)
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
