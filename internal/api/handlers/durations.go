package handlers

import (
	"math"
	"net/http"

	"github.com/concave-dev/qpa/internal/duration"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/gin-gonic/gin"
)

// ParseRequest is the body of POST /durations/parse.
type ParseRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseResponse pairs the input text with its value in seconds.
type ParseResponse struct {
	Text    string  `json:"text"`
	Seconds float64 `json:"seconds"`
}

// FormatRequest is the body of POST /durations/format. Seconds is a pointer
// so that an explicit 0 is distinguishable from a missing field.
type FormatRequest struct {
	Seconds *float64 `json:"seconds" binding:"required"`
}

// FormatResponse pairs the input seconds with their rendered text.
type FormatResponse struct {
	Seconds float64 `json:"seconds"`
	Text    string  `json:"text"`
}

// RescaleRequest is the body of POST /durations/rescale.
type RescaleRequest struct {
	Text   string  `json:"text" binding:"required"`
	Factor float64 `json:"factor"`
}

// RescaleResponse reports both sides of a rescale.
type RescaleResponse struct {
	Text            string  `json:"text"`
	Factor          float64 `json:"factor"`
	Seconds         float64 `json:"seconds"`
	RescaledText    string  `json:"rescaledText"`
	RescaledSeconds float64 `json:"rescaledSeconds"`
}

// HandleParse converts duration text to seconds.
//
// POST /api/v1/durations/parse
func HandleParse() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err.Error(), nil)
			return
		}

		seconds, err := duration.Parse(req.Text)
		if err != nil {
			logging.Debug("Rejected duration %q: %v", logging.FormatText(req.Text), err)
			respondDomainError(c, err)
			return
		}

		respondSuccess(c, ParseResponse{Text: req.Text, Seconds: seconds})
	}
}

// HandleFormat renders seconds as duration text.
//
// POST /api/v1/durations/format
func HandleFormat() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FormatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err.Error(), nil)
			return
		}

		seconds := *req.Seconds
		if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			respondError(c, http.StatusBadRequest, "Invalid seconds",
				"seconds must be a finite, non-negative number", gin.H{"seconds": seconds})
			return
		}

		respondSuccess(c, FormatResponse{Seconds: seconds, Text: duration.Format(seconds)})
	}
}

// HandleRescale parses text, divides it by the factor and formats the result.
//
// POST /api/v1/durations/rescale
func HandleRescale(bounds rescale.Bounds) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RescaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err.Error(), nil)
			return
		}

		r, err := rescale.New(req.Factor, bounds)
		if err != nil {
			respondDomainError(c, err)
			return
		}

		seconds, err := duration.Parse(req.Text)
		if err != nil {
			respondDomainError(c, err)
			return
		}

		rescaled := r.Apply(seconds)
		respondSuccess(c, RescaleResponse{
			Text:            req.Text,
			Factor:          req.Factor,
			Seconds:         seconds,
			RescaledText:    duration.Format(rescaled),
			RescaledSeconds: rescaled,
		})
	}
}
