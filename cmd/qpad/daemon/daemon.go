// Package daemon runs the qpa HTTP daemon: it reserves the API port, starts
// the server and shuts it down gracefully on SIGINT or SIGTERM.
//
// PORT BINDING:
// The API listener is bound before the server starts. A default address falls
// forward to the next free port (bounded by MAX_PORTS); an explicit --api
// address must be free or startup fails.
package daemon

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concave-dev/qpa/cmd/qpad/config"
	"github.com/concave-dev/qpa/internal/api"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/netutil"
	"github.com/concave-dev/qpa/internal/version"
)

// ShutdownTimeout bounds graceful shutdown of in-flight requests.
const ShutdownTimeout = 10 * time.Second

// buildAPIConfig converts the daemon config into the API server config.
func buildAPIConfig() *api.Config {
	apiConfig := api.DefaultConfig()
	apiConfig.BindAddr = config.Global.APIAddr
	apiConfig.BindPort = config.Global.APIPort
	apiConfig.Bounds = config.Global.Bounds()
	apiConfig.CacheTTL = config.Global.CacheTTL
	apiConfig.MaxBodyBytes = config.Global.MaxBodyBytes
	apiConfig.Workers = config.Global.Workers
	apiConfig.Version = version.QpadVersion
	return apiConfig
}

// bindAPIListener reserves the API port. Explicit addresses are bound as
// given; the default address falls forward to the next free port.
func bindAPIListener(apiConfig *api.Config) (net.Listener, error) {
	binder := netutil.NewPortBinder()
	binder.MaxAttempts = config.Global.MaxPorts

	if config.Global.IsExplicitlySet(config.APIAddrField) {
		logging.Info("Pre-binding API listener to explicit port %d", apiConfig.BindPort)
		listener, err := binder.BindTCP(apiConfig.BindAddr, apiConfig.BindPort)
		if err != nil {
			return nil, fmt.Errorf("failed to pre-bind API listener to %s:%d: %w", apiConfig.BindAddr, apiConfig.BindPort, err)
		}
		return listener, nil
	}

	logging.Info("Pre-binding API listener starting from port %d", apiConfig.BindPort)
	listener, port, err := binder.BindTCPWithFallback(apiConfig.BindAddr, apiConfig.BindPort)
	if err != nil {
		return nil, fmt.Errorf("failed to pre-bind API listener: %w", err)
	}
	if port != apiConfig.BindPort {
		logging.Warn("Default API port %d was busy, pre-bound to port %d", apiConfig.BindPort, port)
		apiConfig.BindPort = port
	}
	return listener, nil
}

// Run starts the daemon and blocks until a shutdown signal arrives.
func Run() error {
	logging.Info("Starting qpa daemon v%s (log level %s)", version.QpadVersion, logging.GetLevel())

	// net/http reports connection-level errors through the standard logger
	logging.RedirectStandardLog(logging.NewLevelWriter("WARN", "http"))

	apiConfig := buildAPIConfig()
	if err := apiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid API configuration: %w", err)
	}
	logging.Info("Accepting speed-up factors in %s", apiConfig.Bounds)

	listener, err := bindAPIListener(apiConfig)
	if err != nil {
		return err
	}

	server := api.NewServer(apiConfig)
	if err := server.StartWithListener(listener); err != nil {
		listener.Close()
		return fmt.Errorf("failed to start API server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logging.Success("qpa daemon started successfully on %s:%d", apiConfig.BindAddr, server.Port())
	logging.Info("Daemon running... Press Ctrl+C to shutdown")

	select {
	case sig := <-sigCh:
		logging.Info("Received signal: %v", sig)
	case <-ctx.Done():
		logging.Info("Context cancelled")
	}

	logging.Info("Initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
	}

	logging.Success("qpa daemon shutdown completed (%d cached tables dropped)", server.CachedTables())
	return nil
}
