package handlers

import (
	"time"

	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/gin-gonic/gin"
)

// Represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	MinFactor float64   `json:"minFactor"`
	MaxFactor float64   `json:"maxFactor"`
}

// HandleHealth returns the health status of the API server together with
// the factor bounds requests are validated against.
func HandleHealth(version string, startTime time.Time, bounds rescale.Bounds) gin.HandlerFunc {
	return func(c *gin.Context) {
		uptime := time.Since(startTime)

		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    uptime.String(),
			MinFactor: bounds.Min,
			MaxFactor: bounds.Max,
		}

		respondSuccess(c, response)
	}
}
