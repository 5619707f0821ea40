// Package config provides default configuration values shared by qpad and
// qpactl, and the optional YAML config file both tools can read.
package config

import "time"

const (
	// DefaultBindAddr is the default bind address for the qpad API.
	// Using 0.0.0.0 allows binding to all available network interfaces
	DefaultBindAddr = "0.0.0.0"

	// DefaultAPIPort is the default qpad HTTP port.
	DefaultAPIPort = 8080

	// DefaultAPIAddr is where qpactl looks for qpad when --api is given
	// without a host.
	DefaultAPIAddr = "127.0.0.1:8080"

	// DefaultLogLevel is the default log level for both tools.
	DefaultLogLevel = "INFO"

	// DefaultCacheTTL is how long qpad keeps transformed tables.
	DefaultCacheTTL = 10 * time.Minute

	// DefaultTimeout bounds qpactl requests to qpad.
	DefaultTimeout = 10 * time.Second
)
