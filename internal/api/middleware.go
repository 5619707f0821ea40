package api

import (
	"net/http"
	"time"

	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/utils"
	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the ID correlating a request with its log line.
const RequestIDHeader = "X-Request-ID"

// requestIDMiddleware echoes a valid client request ID or assigns a new one
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !utils.IsValidID(id) {
			generated, err := utils.GenerateID()
			if err != nil {
				logging.Warn("Failed to generate request ID: %v", err)
				generated = "unknown"
			}
			id = generated
		}

		// Stored on the request so the logging middleware can read it
		c.Request.Header.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware provides request logging
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logging.Info("%s %s - [%s] \"%s %s %s %d %s \"%s\" %s\"",
			param.Request.Header.Get(RequestIDHeader),
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
		return ""
	})
}

// corsMiddleware provides CORS headers
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-CSRF-Token, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Qpa-Cache, X-Qpa-Skipped, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "300")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// bodyLimitMiddleware caps request bodies at Config.MaxBodyBytes
func (s *Server) bodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxBodyBytes)
		}
		c.Next()
	}
}
