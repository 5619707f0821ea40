// Package commands contains Cobra CLI command definitions for qpad.
package commands

import (
	"github.com/concave-dev/qpa/cmd/qpad/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	// API flags
	cmd.Flags().StringVar(&config.Global.APIAddr, "api", config.DefaultAPI,
		"Address and port for HTTP API server (e.g., "+config.DefaultAPI+")\n"+
			"If the default port is busy the next free port is used; an explicit --api must be free")
	cmd.Flags().DurationVar(&config.Global.CacheTTL, "cache-ttl", config.DefaultCacheTTL,
		"How long transformed tables stay cached (e.g., 10m, 1h)")
	cmd.Flags().Int64Var(&config.Global.MaxBodyBytes, "max-body", config.DefaultMaxBody,
		"Largest accepted request body in bytes")

	// Factor flags
	cmd.Flags().Float64Var(&config.Global.MinFactor, "min-factor", config.DefaultMinFactor,
		"Lowest speed-up factor accepted by the API")
	cmd.Flags().Float64Var(&config.Global.MaxFactor, "max-factor", config.DefaultMaxFactor,
		"Highest speed-up factor accepted by the API")
	cmd.Flags().IntVar(&config.Global.Workers, "workers", config.DefaultWorkers,
		"Rows transformed concurrently per table request (0 = number of CPUs)")

	// Operational flags
	cmd.Flags().StringVar(&config.Global.ConfigFile, "config", "",
		"YAML config file (flags take precedence over file values)")
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Write all logs to this file instead of stdout/stderr")
}

// CheckExplicitFlags checks if flags were explicitly set by the user
func CheckExplicitFlags(cmd *cobra.Command) {
	config.Global.SetExplicitlySet(config.APIAddrField, cmd.Flags().Changed("api"))
	config.Global.SetExplicitlySet(config.LogLevelField, cmd.Flags().Changed("log-level"))
	config.Global.SetExplicitlySet(config.LogFileField, cmd.Flags().Changed("log-file"))
	config.Global.SetExplicitlySet(config.MinFactorField, cmd.Flags().Changed("min-factor"))
	config.Global.SetExplicitlySet(config.MaxFactorField, cmd.Flags().Changed("max-factor"))
	config.Global.SetExplicitlySet(config.WorkersField, cmd.Flags().Changed("workers"))
}
