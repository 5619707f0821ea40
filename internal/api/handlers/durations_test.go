package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/gin-gonic/gin"
)

// envelope mirrors the JSON envelope for decoding in tests
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Details string          `json:"details"`
	Input   string          `json:"input"`
	Factor  json.RawMessage `json:"factor"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/test", handler)

	req := httptest.NewRequest("POST", "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
	return w, env
}

// TestHandleParse tests duration text parsing over HTTP
func TestHandleParse(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantSeconds float64
		wantInput   string
	}{
		{"minutes", `{"text":"2.5 minutes"}`, http.StatusOK, 150, ""},
		{"instantly", `{"text":"Instantly"}`, http.StatusOK, 0, ""},
		{"prefixed", `{"text":"5m years"}`, http.StatusOK, 5e6 * 31557600, ""},
		{"unknown unit", `{"text":"10 lightyears"}`, http.StatusBadRequest, 0, "10 lightyears"},
		{"garbage", `{"text":"banana"}`, http.StatusBadRequest, 0, "banana"},
		{"missing text", `{}`, http.StatusBadRequest, 0, ""},
		{"malformed json", `{"text":`, http.StatusBadRequest, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := postJSON(t, HandleParse(), tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if env.Status != "error" {
					t.Errorf("envelope status = %q, want error", env.Status)
				}
				if env.Input != tt.wantInput {
					t.Errorf("input = %q, want %q", env.Input, tt.wantInput)
				}
				return
			}

			var resp ParseResponse
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatalf("Failed to parse data: %v", err)
			}
			if resp.Seconds != tt.wantSeconds {
				t.Errorf("seconds = %v, want %v", resp.Seconds, tt.wantSeconds)
			}
		})
	}
}

// TestHandleFormat tests seconds formatting over HTTP
func TestHandleFormat(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantText   string
	}{
		{"zero", `{"seconds":0}`, http.StatusOK, "Instantly"},
		{"half second", `{"seconds":0.5}`, http.StatusOK, "0.5 seconds"},
		{"minutes", `{"seconds":150}`, http.StatusOK, "2.5 minutes"},
		{"days", `{"seconds":315576}`, http.StatusOK, "3.7 days"},
		{"negative", `{"seconds":-1}`, http.StatusBadRequest, ""},
		{"missing", `{}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := postJSON(t, HandleFormat(), tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp FormatResponse
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatalf("Failed to parse data: %v", err)
			}
			if resp.Text != tt.wantText {
				t.Errorf("text = %q, want %q", resp.Text, tt.wantText)
			}
		})
	}
}

// TestHandleRescale tests rescaling over HTTP
func TestHandleRescale(t *testing.T) {
	handler := HandleRescale(rescale.DefaultBounds())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantText   string
		wantMsg    string
	}{
		{"one year", `{"text":"1 year","factor":100}`, http.StatusOK, "3.7 days", ""},
		{"one minute", `{"text":"1 minute","factor":100}`, http.StatusOK, "0.6 seconds", ""},
		{"zero factor", `{"text":"1 year","factor":0}`, http.StatusBadRequest, "", "Invalid speed-up factor"},
		{"factor above max", `{"text":"1 year","factor":5000000}`, http.StatusBadRequest, "", "Invalid speed-up factor"},
		{"bad text", `{"text":"banana","factor":100}`, http.StatusBadRequest, "", "Invalid duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := postJSON(t, handler, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if env.Message != tt.wantMsg {
					t.Errorf("message = %q, want %q", env.Message, tt.wantMsg)
				}
				return
			}

			var resp RescaleResponse
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatalf("Failed to parse data: %v", err)
			}
			if resp.RescaledText != tt.wantText {
				t.Errorf("rescaledText = %q, want %q", resp.RescaledText, tt.wantText)
			}
		})
	}
}
