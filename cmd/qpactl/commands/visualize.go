package commands

import (
	"github.com/spf13/cobra"
)

// Visualize command
var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render an optimised table as a terminal heat map",
	Long: `Render an optimised table as a colour-coded heat map.

Cells are coloured on a log scale of their duration. Without --csv the
optimised tables in --output-dir are listed for selection (blank = 1,
0 = cancel); when not on a terminal the first table is used.`,
	Example: `  # Choose a table interactively
  qpactl visualize

  # Render a specific table and save the infographic
  qpactl visualize --csv data/output/100_output.csv --save`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// List command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List optimised tables available for visualize",
	Example: `  # List tables in the default output directory
  qpactl list

  # Include factor, size and age
  qpactl list -v -d out`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetVisualizeCommands returns visualize commands for handler assignment
func GetVisualizeCommands() (*cobra.Command, *cobra.Command) {
	return visualizeCmd, listCmd
}

// SetupVisualizeFlags configures visualize flags
func SetupVisualizeFlags(cmd *cobra.Command, csvPtr, outputDirPtr, titlePtr *string, savePtr *bool,
	defaultOutputDir, defaultTitle string) {
	cmd.Flags().StringVarP(csvPtr, "csv", "c", "",
		"Optimised table to render (prompts when not given)")
	cmd.Flags().StringVarP(outputDirPtr, "output-dir", "d", defaultOutputDir,
		"Directory searched for tables and receiving infographics")
	SetupInfographicFlags(cmd, titlePtr, savePtr, defaultTitle)
}

// SetupInfographicFlags configures the flags visualize shares with pipeline
func SetupInfographicFlags(cmd *cobra.Command, titlePtr *string, savePtr *bool, defaultTitle string) {
	cmd.Flags().StringVarP(titlePtr, "title", "t", defaultTitle,
		"Infographic title prefix")
	cmd.Flags().BoolVar(savePtr, "save", false,
		"Also save the infographic as <stem>_infographic.txt")
}

// SetupListFlags configures list flags
func SetupListFlags(cmd *cobra.Command, outputDirPtr *string, defaultOutputDir string) {
	cmd.Flags().StringVarP(outputDirPtr, "output-dir", "d", defaultOutputDir,
		"Directory to check for optimised tables")
}
