// Package config provides configuration management for the qpa daemon.
//
// The daemon's configuration lives in a single Global value filled from
// command line flags, an optional YAML file and environment variables, in
// that order of precedence. Explicit-set tracking records which values the
// user gave on the command line so the file and the defaults only fill gaps.
//
// CONFIGURATION SOURCES:
//   - Flags: --api, --log-level, --log-file, --min-factor, --max-factor, --cache-ttl, ...
//   - File: --config path, keys shared with qpactl (min_factor, max_factor, log_level, workers)
//   - Environment: DEBUG=true forces DEBUG logging, MAX_PORTS bounds the port search
package config

import (
	"time"

	configDefaults "github.com/concave-dev/qpa/internal/config"
	"github.com/concave-dev/qpa/internal/rescale"
)

// ConfigField represents a configuration field that can be explicitly set
type ConfigField int

const (
	// Configuration field identifiers
	APIAddrField ConfigField = iota
	LogLevelField
	LogFileField
	MinFactorField
	MaxFactorField
	WorkersField
)

const (
	DefaultAPI       = configDefaults.DefaultBindAddr + ":8080" // Default API address
	DefaultLogLevel  = configDefaults.DefaultLogLevel           // Default log level
	DefaultCacheTTL  = configDefaults.DefaultCacheTTL           // Default transform cache lifetime
	DefaultMinFactor = rescale.MinFactor                        // Default lower factor bound
	DefaultMaxFactor = rescale.MaxFactor                        // Default upper factor bound
	DefaultWorkers   = 4                                        // Default row workers per request
	DefaultMaxBody   = 1 << 20                                  // Default request body limit
	DefaultMaxPorts  = 100                                      // Default port search range
)

// Config holds all daemon configuration values
type Config struct {
	APIAddr      string        // HTTP API bind address ("host:port" until validated, then host)
	APIPort      int           // HTTP API port (derived from APIAddr)
	ConfigFile   string        // Optional YAML config file
	LogLevel     string        // Log level: DEBUG, INFO, WARN, ERROR
	LogFile      string        // Log file path (empty logs to stdout/stderr)
	MinFactor    float64       // Lowest accepted speed-up factor
	MaxFactor    float64       // Highest accepted speed-up factor
	CacheTTL     time.Duration // Lifetime of cached table transformations
	Workers      int           // Row workers per table transformation
	MaxBodyBytes int64         // Largest accepted request body
	MaxPorts     int           // Ports to try when the default API port is busy

	// Flags to track if values were explicitly set by user
	apiAddrExplicitlySet   bool
	logLevelExplicitlySet  bool
	logFileExplicitlySet   bool
	minFactorExplicitlySet bool
	maxFactorExplicitlySet bool
	workersExplicitlySet   bool
}

// Global configuration instance
var Global Config

// SetExplicitlySet marks a configuration field as explicitly set by the user.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	switch field {
	case APIAddrField:
		c.apiAddrExplicitlySet = value
	case LogLevelField:
		c.logLevelExplicitlySet = value
	case LogFileField:
		c.logFileExplicitlySet = value
	case MinFactorField:
		c.minFactorExplicitlySet = value
	case MaxFactorField:
		c.maxFactorExplicitlySet = value
	case WorkersField:
		c.workersExplicitlySet = value
	}
}

// IsExplicitlySet returns whether a configuration field was explicitly set by the user.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	switch field {
	case APIAddrField:
		return c.apiAddrExplicitlySet
	case LogLevelField:
		return c.logLevelExplicitlySet
	case LogFileField:
		return c.logFileExplicitlySet
	case MinFactorField:
		return c.minFactorExplicitlySet
	case MaxFactorField:
		return c.maxFactorExplicitlySet
	case WorkersField:
		return c.workersExplicitlySet
	}
	return false
}

// Bounds returns the configured factor bounds.
func (c *Config) Bounds() rescale.Bounds {
	return rescale.Bounds{Min: c.MinFactor, Max: c.MaxFactor}
}
