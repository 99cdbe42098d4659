// health.go - Reports whether the database is reachable

package handlers // Declares the package name

import ( // Import required packages
	"context"  // Ping timeout
	"net/http" // HTTP status codes
	"time"     // Timeout duration

	"github.com/gin-gonic/gin" // Gin web framework
)

// Pinger reports whether the database is reachable. *database.Store implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health - GET /health
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil { // Unreachable or closed
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
