// Package api provides HTTP API server configuration for qpad.
//
// The configuration covers network binding, the speed-up factor bounds every
// request is validated against, the lifetime of cached table transformations
// and the largest CSV body the server accepts.
package api

import (
	"fmt"
	"time"

	"github.com/concave-dev/qpa/internal/config"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/concave-dev/qpa/internal/validate"
)

const (
	// DefaultMaxBodyBytes caps uploaded CSV tables.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultWorkers bounds per-request table transformation concurrency.
	DefaultWorkers = 4
)

// Config holds everything the HTTP API server needs.
//
// TODO: Add support for TLS/HTTPS configuration (cert/key files)
type Config struct {
	BindAddr     string         // HTTP server bind address (e.g., "0.0.0.0")
	BindPort     int            // HTTP server bind port
	Bounds       rescale.Bounds // Accepted speed-up factor range
	CacheTTL     time.Duration  // Lifetime of cached table transformations
	MaxBodyBytes int64          // Largest accepted request body
	Workers      int            // Row workers per table transformation
	Version      string         // Reported by the health endpoint
}

// DefaultConfig returns a loopback configuration with default bounds.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:     "127.0.0.1",
		BindPort:     config.DefaultAPIPort,
		Bounds:       rescale.DefaultBounds(),
		CacheTTL:     config.DefaultCacheTTL,
		MaxBodyBytes: DefaultMaxBodyBytes,
		Workers:      DefaultWorkers,
	}
}

// Validate checks that the server can start with this configuration.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidatePortRange(c.BindPort); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("factor bounds validation failed: %w", err)
	}
	if err := validate.ValidatePositiveTimeout(c.CacheTTL, "cache TTL"); err != nil {
		return err
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	return nil
}
