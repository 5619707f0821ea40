// Package handlers provides HTTP request handlers for the qpad API server.
//
// Every JSON response uses one envelope so clients can decode success and
// failure the same way:
//
//	{"status": "success", "data": {...}}
//	{"status": "error", "message": "...", "details": "...", ...}
//
// DURATION ENDPOINTS:
//   - POST /api/v1/durations/parse: duration text to seconds
//   - POST /api/v1/durations/format: seconds to duration text
//   - POST /api/v1/durations/rescale: duration text divided by a factor
//
// TABLE ENDPOINTS:
//   - POST /api/v1/tables/transform: CSV table in, rescaled CSV table out
package handlers

import (
	"errors"
	"net/http"

	"github.com/concave-dev/qpa/internal/duration"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/concave-dev/qpa/internal/table"
	"github.com/gin-gonic/gin"
)

// respondSuccess writes the success envelope.
func respondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondError writes the error envelope with any extra fields.
func respondError(c *gin.Context, code int, message, details string, extra gin.H) {
	body := gin.H{
		"status":  "error",
		"message": message,
		"details": details,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

// respondDomainError maps codec, factor and table errors to 400 responses,
// carrying the offending input back to the client.
func respondDomainError(c *gin.Context, err error) {
	var (
		perr *duration.ParseError
		cerr *rescale.ConfigError
		terr *table.CellError
	)
	switch {
	case errors.As(err, &terr):
		respondError(c, http.StatusBadRequest, "Invalid table cell", err.Error(), gin.H{
			"row":    terr.Row + 1,
			"column": terr.Header,
			"input":  terr.Text,
		})
	case errors.As(err, &perr):
		respondError(c, http.StatusBadRequest, "Invalid duration", err.Error(), gin.H{
			"input": perr.Input,
		})
	case errors.As(err, &cerr):
		respondError(c, http.StatusBadRequest, "Invalid speed-up factor", err.Error(), gin.H{
			"factor": cerr.Factor,
		})
	default:
		respondError(c, http.StatusInternalServerError, "Request failed", err.Error(), nil)
	}
}
