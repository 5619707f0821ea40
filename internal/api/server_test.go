package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestNewServer tests NewServer creation
func TestNewServer(t *testing.T) {
	config := DefaultConfig()
	config.BindPort = 9090

	server := NewServer(config)

	if server == nil {
		t.Fatal("NewServer() returned nil")
	}

	if server.bindAddr != config.BindAddr {
		t.Errorf("NewServer() bindAddr = %q, want %q", server.bindAddr, config.BindAddr)
	}

	if server.bindPort != config.BindPort {
		t.Errorf("NewServer() bindPort = %d, want %d", server.bindPort, config.BindPort)
	}

	if server.CachedTables() != 0 {
		t.Errorf("NewServer() cache should start empty, has %d items", server.CachedTables())
	}
}

// TestNewServer_NilConfig tests NewServer with nil config
func TestNewServer_NilConfig(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewServer() with nil config should panic")
		}
	}()

	NewServer(nil)
}

// TestServer_HandlerFactories tests that handler factory methods return non-nil functions
func TestServer_HandlerFactories(t *testing.T) {
	server := NewServer(DefaultConfig())

	tests := []struct {
		name    string
		handler func() interface{}
	}{
		{"getHandlerHealth", func() interface{} { return server.getHandlerHealth() }},
		{"getHandlerParse", func() interface{} { return server.getHandlerParse() }},
		{"getHandlerFormat", func() interface{} { return server.getHandlerFormat() }},
		{"getHandlerRescale", func() interface{} { return server.getHandlerRescale() }},
		{"getHandlerTransform", func() interface{} { return server.getHandlerTransform() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.handler() == nil {
				t.Errorf("%s() returned nil", tt.name)
			}
		})
	}
}

// TestServer_Handler tests the full middleware stack end to end
func TestServer_Handler(t *testing.T) {
	server := NewServer(DefaultConfig())
	handler := server.Handler()

	req := httptest.NewRequest("POST", "/api/v1/durations/rescale",
		strings.NewReader(`{"text":"1 year","factor":100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("rescale status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			RescaledText string `json:"rescaledText"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Status != "success" || resp.Data.RescaledText != "3.7 days" {
		t.Errorf("unexpected response: %+v", resp)
	}

	req = httptest.NewRequest("POST", "/api/v1/tables/transform?factor=100",
		strings.NewReader("id,a\n1,1 year\n"))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("transform status = %d, want 200", w.Code)
	}
	if server.CachedTables() != 1 {
		t.Errorf("CachedTables() = %d, want 1", server.CachedTables())
	}
}

// TestServer_StartShutdown tests the listener lifecycle
func TestServer_StartShutdown(t *testing.T) {
	// Reserve a free port, then release it for the server
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve port: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	config := DefaultConfig()
	config.BindPort = port
	server := NewServer(config)

	if err := server.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/health", port))
	if err != nil {
		t.Fatalf("GET /health error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// TestServer_StartWithListener tests serving on a pre-bound listener
func TestServer_StartWithListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to create test listener: %v", err)
	}

	server := NewServer(DefaultConfig())
	if err := server.StartWithListener(listener); err != nil {
		t.Fatalf("StartWithListener() error = %v", err)
	}
	defer server.Shutdown(context.Background())

	port := listener.Addr().(*net.TCPAddr).Port
	if server.Port() != port {
		t.Errorf("Port() = %d, want %d", server.Port(), port)
	}

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/health", port))
	if err != nil {
		t.Fatalf("GET /health error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}

	var health struct {
		Status string `json:"status"`
		Data   struct {
			Status    string  `json:"status"`
			Version   string  `json:"version"`
			MaxFactor float64 `json:"maxFactor"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to parse health response: %v", err)
	}
	if health.Status != "success" || health.Data.Status != "healthy" {
		t.Errorf("unexpected health response: %+v", health)
	}
	if health.Data.MaxFactor != DefaultConfig().Bounds.Max {
		t.Errorf("health maxFactor = %v, want %v", health.Data.MaxFactor, DefaultConfig().Bounds.Max)
	}
}
