// Package commands provides the command tree for qpactl.
//
// COMMAND STRUCTURE:
//   - transform: rescale a CSV table of brute-force durations by a speed-up factor
//   - visualize: render an optimised table as a terminal heat map
//   - pipeline: transform, then visualize the result
//   - list: show optimised tables available for visualize
//   - parse, format, rescale: convert single durations
//   - health: show the status of a qpad daemon
//
// Commands run locally; the global --api flag sends codec and table work to a
// qpad daemon instead.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "qpactl",
	Short: "CLI tool for rescaling quantum brute-force password cracking estimates",
	Long: `qpa CLI (qpactl) rescales tables of password brute-force durations.

Duration cells such as "1.4 hours" or "4.2k years" are parsed into seconds,
divided by a speed-up factor and written back in the same compact notation.
Optimised tables can be rendered as a colour-coded terminal heat map.`,
	SilenceUsage: true,
	Example: `  # Rescale data/input/input.csv by 100 into data/output/100_output.csv
  qpactl transform --factor=100

  # Pick an optimised table and render it
  qpactl visualize

  # Transform and visualize in one go, saving the infographic
  qpactl pipeline -f 1000 --save

  # Convert single durations
  qpactl parse "4.2k years" "2.5 minutes"
  qpactl format 150
  qpactl rescale "1 year" --factor=100

  # Use a running qpad daemon
  qpactl --api=127.0.0.1:8080 rescale "1 year" -f 100

  # Output in JSON format
  qpactl -o json list`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(transformCmd)
	RootCmd.AddCommand(pipelineCmd)
	RootCmd.AddCommand(visualizeCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(rescaleCmd)
	RootCmd.AddCommand(healthCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiAddrPtr *string, configFilePtr *string, logLevelPtr *string,
	timeoutPtr *int, verbosePtr *bool, outputPtr *string, defaultLogLevel string, defaultTimeout int, defaultOutput string) {
	rootCmd.PersistentFlags().StringVar(apiAddrPtr, "api", "",
		"qpad API server address (e.g., 127.0.0.1:8080); empty runs locally")
	rootCmd.PersistentFlags().StringVar(configFilePtr, "config", "",
		"YAML config file (flags take precedence over file values)")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", defaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", defaultTimeout,
		"Connection timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", defaultOutput,
		"Output format: table, json")
}
