// Package config provides configuration management for the qpactl CLI.
package config

import (
	fileconfig "github.com/concave-dev/qpa/internal/config"
	"github.com/concave-dev/qpa/internal/heatmap"
	"github.com/concave-dev/qpa/internal/pipeline"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/concave-dev/qpa/internal/version"
)

const (
	DefaultTimeout  = 8       // Default connection timeout in seconds
	DefaultOutput   = "table" // Default output format
	DefaultLogLevel = "ERROR" // CLI only shows errors unless asked
)

// Version returns the current qpactl CLI version from the centralized version package
var Version = version.QpactlVersion

// Global holds the global CLI configuration
var Global struct {
	APIAddr    string // qpad API server address; empty runs the codec locally
	ConfigFile string // Optional YAML config file
	LogLevel   string // Log level for CLI operations
	Timeout    int    // Connection timeout in seconds
	Verbose    bool   // Show verbose output
	Output     string // Output format: table, json

	// File holds the loaded config file; never nil after validation
	File *fileconfig.File
}

// Transform holds the transform and pipeline command configuration
var Transform struct {
	Input       string  // Source CSV table
	OutputDir   string  // Directory receiving the rescaled table
	Factor      float64 // Speed-up factor (resolved by the handler when unset)
	NoSaveOld   bool    // Skip writing the unmodified copy
	SkipInvalid bool    // Leave unparseable cells unchanged instead of failing
	Workers     int     // Rows transformed concurrently (0 = number of CPUs)
}

// Visualize holds the visualize and pipeline command configuration
var Visualize struct {
	CSV       string // Transformed table to render; prompts when empty
	OutputDir string // Directory searched for tables and receiving infographics
	Title     string // Infographic title prefix
	Save      bool   // Also write the infographic next to the table
}

// Codec holds the parse, format and rescale command configuration
var Codec struct {
	Factor float64 // Speed-up factor for rescale
}

// Defaults used when neither flags nor the config file set a value.
const (
	DefaultInput     = pipeline.DefaultInputPath
	DefaultOutputDir = pipeline.DefaultOutputDir
	DefaultTitle     = heatmap.DefaultTitle
	DefaultFactor    = rescale.DefaultFactor
)

// Bounds returns the factor bounds from the config file, or the defaults.
func Bounds() rescale.Bounds {
	bounds := rescale.DefaultBounds()
	if Global.File != nil {
		bounds.Min, bounds.Max = Global.File.Bounds(bounds.Min, bounds.Max)
	}
	return bounds
}
