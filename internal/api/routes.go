package api

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// API version prefix
	v1 := router.Group("/api/v1")

	// Health check endpoint
	v1.GET("/health", s.handleHealth)

	// Duration codec endpoints
	durations := v1.Group("/durations")
	{
		durations.POST("/parse", s.getHandlerParse())
		durations.POST("/format", s.getHandlerFormat())
		durations.POST("/rescale", s.getHandlerRescale())
	}

	// Table endpoints
	tables := v1.Group("/tables")
	{
		tables.POST("/transform", s.getHandlerTransform())
	}
}
