package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/handlers"
	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/ticketmaster"
)

// NewRouter wires the public endpoints.
// GET /health_check — liveness, independent of upstream availability
// GET /city_events/ — the proxy endpoint
func NewRouter(tm *ticketmaster.Client) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	// Liveness: confirms the process is running.
	r.GET("/health_check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "pass"})
	})

	handlers.RegisterEventRoutes(r, tm)

	return r
}

// requestID tags every response with an X-Request-ID for log correlation,
// honoring an inbound ID when the caller supplies one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
