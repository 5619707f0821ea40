// Package api provides the qpad HTTP API server. It exposes the duration
// codec and the table transformation over REST so other tools (qpactl with
// --api, scripts, dashboards) can use them without linking the packages.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/concave-dev/qpa/internal/api/handlers"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/netutil"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// Represents the qpad API server
type Server struct {
	config     *Config
	cache      *cache.Cache
	httpServer *http.Server
	bindAddr   string
	bindPort   int
	startTime  time.Time
}

// NewServer creates a new qpad API server instance
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		config:    config,
		cache:     cache.New(config.CacheTTL, 2*config.CacheTTL),
		bindAddr:  config.BindAddr,
		bindPort:  config.BindPort,
		startTime: time.Now(),
	}
}

// Handler builds the router with middleware and routes.
func (s *Server) Handler() http.Handler {
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	router.Use(s.requestIDMiddleware())
	router.Use(s.loggingMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(s.bodyLimitMiddleware())
	router.Use(gin.Recovery())

	s.setupRoutes(router)
	return router
}

// Start binds the configured address and starts serving.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.bindAddr, fmt.Sprint(s.bindPort))

	// Bind first so address errors surface before Start returns
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", addr, err)
	}
	return s.StartWithListener(listener)
}

// StartWithListener serves on a listener the caller already bound, as qpad
// does after reserving its port.
func (s *Server) StartWithListener(listener net.Listener) error {
	if port, err := netutil.ListenerPort(listener); err == nil {
		s.bindPort = port
	}
	logging.Info("Starting HTTP API server on %s", listener.Addr())

	s.httpServer = &http.Server{
		Addr:         listener.Addr().String(),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server started successfully")
	return nil
}

// Port returns the port the server is bound to.
func (s *Server) Port() int {
	return s.bindPort
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// CachedTables returns the number of cached table transformations.
func (s *Server) CachedTables() int {
	return s.cache.ItemCount()
}

// handleHealth delegates to handlers.HandleHealth
func (s *Server) handleHealth(c *gin.Context) {
	handler := s.getHandlerHealth()
	handler(c)
}

// getHandlerHealth is a health endpoint handler factory
func (s *Server) getHandlerHealth() gin.HandlerFunc {
	return handlers.HandleHealth(s.config.Version, s.startTime, s.config.Bounds)
}

// getHandlerParse is a duration parse endpoint handler factory
func (s *Server) getHandlerParse() gin.HandlerFunc {
	return handlers.HandleParse()
}

// getHandlerFormat is a duration format endpoint handler factory
func (s *Server) getHandlerFormat() gin.HandlerFunc {
	return handlers.HandleFormat()
}

// getHandlerRescale is a duration rescale endpoint handler factory
func (s *Server) getHandlerRescale() gin.HandlerFunc {
	return handlers.HandleRescale(s.config.Bounds)
}

// getHandlerTransform is a table transform endpoint handler factory
func (s *Server) getHandlerTransform() gin.HandlerFunc {
	return handlers.HandleTransform(s.config.Bounds, s.cache, s.config.Workers)
}
