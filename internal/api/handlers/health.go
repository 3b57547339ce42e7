package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ats-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Check if the service is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ReadinessCheck pings every named dependency. A nil pinger is skipped.
//
//	@Summary		Readiness check
//	@Description	Check that the database and cache are reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Ready"
//	@Failure		503	{object}	map[string]string	"A dependency is unreachable"
//	@Router			/ready [get]
func ReadinessCheck(deps map[string]storage.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := make(map[string]string, len(deps))
		ready := true
		for name, p := range deps {
			if p == nil {
				continue
			}
			if err := p.Ping(ctx); err != nil {
				log.Printf("Readiness: %s unreachable: %v", name, err)
				checks[name] = "unavailable"
				ready = false
				continue
			}
			checks[name] = "ok"
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": checks})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
	}
}
