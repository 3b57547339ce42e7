package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, client IP, status, latency and, once
// authenticated, the caller's id and role.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		caller := "-"
		if user, ok := CurrentUser(c); ok {
			caller = user.ID.String() + "/" + string(user.Role)
		}

		log.Printf(
			"[%s] %s %s %d %s %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			latency,
			caller,
		)
	}
}
