package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into a 500 JSON response. The panic value is only
// included when exposeDetail is set (development).
func Recovery(exposeDetail bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovery: panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		body := gin.H{"message": "Internal server error"}
		if exposeDetail {
			body["error"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
