package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestCORSMiddleware tests CORS header setting
func TestCORSMiddleware(t *testing.T) {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	server := NewServer(DefaultConfig())

	// Create router with CORS middleware
	router := gin.New()
	router.Use(server.corsMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})

	tests := []struct {
		name           string
		method         string
		expectedStatus int
	}{
		{
			name:           "GET request with CORS headers",
			method:         "GET",
			expectedStatus: 200,
		},
		{
			name:           "OPTIONS request should return 204",
			method:         "OPTIONS",
			expectedStatus: 204,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/test", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			expectedHeaders := map[string]string{
				"Access-Control-Allow-Origin":      "*",
				"Access-Control-Allow-Methods":     "GET, POST, OPTIONS",
				"Access-Control-Allow-Headers":     "Accept, Authorization, Content-Type, X-CSRF-Token, X-Request-ID",
				"Access-Control-Expose-Headers":    "X-Qpa-Cache, X-Qpa-Skipped, X-Request-ID",
				"Access-Control-Allow-Credentials": "true",
				"Access-Control-Max-Age":           "300",
			}

			for header, expectedValue := range expectedHeaders {
				actualValue := w.Header().Get(header)
				if actualValue != expectedValue {
					t.Errorf("Header %s = %q, want %q", header, actualValue, expectedValue)
				}
			}
		})
	}
}

// TestBodyLimitMiddleware tests that oversized bodies are rejected
func TestBodyLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := DefaultConfig()
	config.MaxBodyBytes = 64
	server := NewServer(config)

	router := gin.New()
	router.Use(server.bodyLimitMiddleware())
	server.setupRoutes(router)

	body := "id,a\n" + strings.Repeat("1,1 hour\n", 20)
	req := httptest.NewRequest("POST", "/api/v1/tables/transform", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != 413 {
		t.Errorf("oversized body status = %d, want 413", w.Code)
	}
}

// TestRequestIDMiddleware tests request ID assignment and echoing
func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer(DefaultConfig())
	router := gin.New()
	router.Use(server.requestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(200, c.GetHeader(RequestIDHeader))
	})

	tests := []struct {
		name     string
		incoming string
		echoed   bool
	}{
		{name: "generated when absent", incoming: "", echoed: false},
		{name: "valid ID echoed", incoming: "trace-42", echoed: true},
		{name: "invalid ID replaced", incoming: "bad id!", echoed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if tt.echoed && got != tt.incoming {
				t.Errorf("request ID = %q, want %q", got, tt.incoming)
			}
			if !tt.echoed && (len(got) != 12 || got == tt.incoming) {
				t.Errorf("request ID = %q, want a generated 12-character ID", got)
			}
			if w.Body.String() != got {
				t.Errorf("handler saw request ID %q, response carries %q", w.Body.String(), got)
			}
		})
	}
}
