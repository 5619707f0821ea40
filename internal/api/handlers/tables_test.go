package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const inputCSV = "Number of Characters,Numbers,Lowercase Letters\n" +
	"4,Instantly,Instantly\n" +
	"12,1 minute,1 year\n"

// countingCache wraps go-cache and counts lookups
type countingCache struct {
	*cache.Cache
	sets int
}

func (c *countingCache) Set(key string, value any, ttl time.Duration) {
	c.sets++
	c.Cache.Set(key, value, ttl)
}

func postCSV(handler gin.HandlerFunc, query, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/transform", handler)

	req := httptest.NewRequest("POST", "/transform"+query, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHandleTransform tests CSV transformation and caching
func TestHandleTransform(t *testing.T) {
	c := &countingCache{Cache: cache.New(time.Minute, time.Minute)}
	handler := HandleTransform(rescale.DefaultBounds(), c, 2)

	w := postCSV(handler, "?factor=100", inputCSV)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	want := "Number of Characters,Numbers,Lowercase Letters\n" +
		"4,Instantly,Instantly\n" +
		"12,0.6 seconds,3.7 days\n"
	if w.Body.String() != want {
		t.Errorf("body = %q, want %q", w.Body.String(), want)
	}
	if got := w.Header().Get("Content-Type"); got != CSVContentType {
		t.Errorf("Content-Type = %q", got)
	}
	if got := w.Header().Get("X-Qpa-Cache"); got != "miss" {
		t.Errorf("X-Qpa-Cache = %q, want miss", got)
	}

	// Same body and factor is served from the cache
	w = postCSV(handler, "?factor=100", inputCSV)
	if got := w.Header().Get("X-Qpa-Cache"); got != "hit" {
		t.Errorf("second X-Qpa-Cache = %q, want hit", got)
	}
	if w.Body.String() != want {
		t.Errorf("cached body = %q, want %q", w.Body.String(), want)
	}

	// A different factor is a different entry
	w = postCSV(handler, "?factor=10", inputCSV)
	if got := w.Header().Get("X-Qpa-Cache"); got != "miss" {
		t.Errorf("X-Qpa-Cache for new factor = %q, want miss", got)
	}
	if c.sets != 2 {
		t.Errorf("cache sets = %d, want 2", c.sets)
	}
}

// TestHandleTransformDefaultFactor tests that a missing factor means 100
func TestHandleTransformDefaultFactor(t *testing.T) {
	handler := HandleTransform(rescale.DefaultBounds(), cache.New(time.Minute, time.Minute), 0)

	w := postCSV(handler, "", inputCSV)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "3.7 days") {
		t.Errorf("body = %q, want default factor 100", w.Body.String())
	}
}

// TestHandleTransformPolicies tests strict and skip handling of bad cells
func TestHandleTransformPolicies(t *testing.T) {
	handler := HandleTransform(rescale.DefaultBounds(), cache.New(time.Minute, time.Minute), 1)
	body := inputCSV + "16,banana,1 year\n"

	w := postCSV(handler, "?factor=100", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("strict status = %d, want 400", w.Code)
	}
	var env struct {
		Message string `json:"message"`
		Row     int    `json:"row"`
		Column  string `json:"column"`
		Input   string `json:"input"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if env.Message != "Invalid table cell" || env.Row != 3 || env.Column != "Numbers" || env.Input != "banana" {
		t.Errorf("unexpected error envelope: %+v", env)
	}

	w = postCSV(handler, "?factor=100&policy=skip", body)
	if w.Code != http.StatusOK {
		t.Fatalf("skip status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("X-Qpa-Skipped"); got != "1" {
		t.Errorf("X-Qpa-Skipped = %q, want 1", got)
	}
	if !strings.Contains(w.Body.String(), "16,banana,3.7 days") {
		t.Errorf("skipped cell not preserved: %q", w.Body.String())
	}
}

// TestHandleTransformErrors tests request validation
func TestHandleTransformErrors(t *testing.T) {
	handler := HandleTransform(rescale.DefaultBounds(), cache.New(time.Minute, time.Minute), 1)

	tests := []struct {
		name  string
		query string
		body  string
	}{
		{"non-numeric factor", "?factor=fast", inputCSV},
		{"factor below min", "?factor=0.5", inputCSV},
		{"unknown policy", "?policy=lenient", inputCSV},
		{"ragged table", "", "id,a\n1,1 hour,extra\n"},
		{"empty body", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postCSV(handler, tt.query, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (%s)", w.Code, w.Body.String())
			}
		})
	}
}
