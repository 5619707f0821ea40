// Package commands provides the CLI command structure for the qpa daemon.
//
// qpad has a single root command: parse flags, load the optional config file,
// validate, then run the HTTP API until SIGINT or SIGTERM.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/qpa/cmd/qpad/config"
	"github.com/concave-dev/qpa/cmd/qpad/daemon"
	"github.com/concave-dev/qpa/cmd/qpad/utils"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/version"
	"github.com/spf13/cobra"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Use fmt.Fprintf since the logger may be writing to this file
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// Root command for the qpa daemon
var RootCmd = &cobra.Command{
	Use:   "qpad",
	Short: "HTTP daemon for quantum brute-force duration rescaling",
	Long: `qpa daemon (qpad) serves the duration codec over HTTP.

Parse duration text such as "4.2k years" into seconds, format seconds back into
compact text, and rescale single durations or whole CSV tables by a speed-up
factor. Transformed tables are cached in memory.`,
	Version:      version.QpadVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Start on the default address (0.0.0.0:8080, next free port if busy)
  qpad

  # Explicit address and narrower factor bounds
  qpad --api=127.0.0.1:9000 --min-factor=10 --max-factor=10000

  # Log to a file and keep transformed tables for an hour
  qpad --log-file=/var/log/qpad.log --cache-ttl=1h`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.DisplayLogo(version.QpadVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		CheckExplicitFlags(cmd)

		if config.Global.IsExplicitlySet(config.LogFileField) && config.Global.LogFile != "" {
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}

			var err error
			logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
			}

			logging.SetOutput(logFileHandle)
		}

		// Apply the level before config initialization logs anything
		logging.SetLevel(config.Global.LogLevel)
		config.InitializeConfig()
		if err := config.ApplyConfigFile(); err != nil {
			CleanupLogFile()
			return err
		}
		// Re-apply after environment and file overrides
		logging.SetLevel(config.Global.LogLevel)

		if err := config.ValidateConfig(); err != nil {
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()
		return daemon.Run()
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupFlags(RootCmd)
}
