package commands

import (
	"github.com/spf13/cobra"
)

// Parse command
var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Convert duration text to seconds",
	Long: `Convert duration text such as "1.4 hours", "4.2k years" or "Instantly"
to seconds. Prefixes k, m, bn, tn, qd and qn multiply by powers of 1000.`,
	Example: `  qpactl parse "2.5 minutes"
  qpactl parse "4.2k years" Instantly -o json`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Format command
var formatCmd = &cobra.Command{
	Use:   "format <seconds>...",
	Short: "Convert seconds to duration text",
	Example: `  qpactl format 150
  qpactl format 0.4 157788000000`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Rescale command
var rescaleCmd = &cobra.Command{
	Use:   "rescale <text>...",
	Short: "Divide durations by a speed-up factor",
	Example: `  qpactl rescale "1 year" --factor=100
  qpactl rescale "4.2k years" "1.4 hours" -f 100 -v`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Health command
var healthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Show the status of a qpad daemon",
	Example: `  qpactl --api=127.0.0.1:8080 health`,
	Args:    cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetCodecCommands returns codec commands for handler assignment
func GetCodecCommands() (*cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command) {
	return parseCmd, formatCmd, rescaleCmd, healthCmd
}

// SetupRescaleFlags configures rescale flags
func SetupRescaleFlags(cmd *cobra.Command, factorPtr *float64, defaultFactor float64) {
	cmd.Flags().Float64VarP(factorPtr, "factor", "f", defaultFactor,
		"Speed-up factor to apply (prompts on a terminal when not given)")
}
