package commands

import (
	"github.com/spf13/cobra"
)

// Transform command
var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Rescale every duration in a CSV table by a speed-up factor",
	Long: `Rescale every duration cell of a CSV table by a speed-up factor.

The first column identifies each row and is copied unchanged; every other cell
is parsed, divided by the factor and re-rendered. The result is written to
<output-dir>/<factor>_output.csv, and the unmodified input to
<output-dir>/password_bruteforce_old.csv unless --no-save-old is given.

Without --factor the config file value is used, then an interactive prompt
when running on a terminal, then the default of 100.`,
	Example: `  # Rescale the default input by 100
  qpactl transform -f 100

  # Custom input and output, keep going past unreadable cells
  qpactl transform -i tables/hive.csv -d out --skip-invalid

  # Run the transformation on a qpad daemon
  qpactl --api=127.0.0.1:8080 transform -f 1000`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Pipeline command
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Transform a table, then visualize the result",
	Long: `Run transform followed by visualize on the table it wrote.

Accepts the transform flags plus --title and --save from visualize.`,
	Example: `  # Transform by 1000 and show the heat map
  qpactl pipeline -f 1000

  # Save the infographic next to the optimised table
  qpactl pipeline -f 1000 --save --title "Hive Systems 2024"`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetTransformCommands returns transform commands for handler assignment
func GetTransformCommands() (*cobra.Command, *cobra.Command) {
	return transformCmd, pipelineCmd
}

// SetupTransformFlags configures flags shared by transform and pipeline
func SetupTransformFlags(cmd *cobra.Command, inputPtr, outputDirPtr *string, factorPtr *float64,
	noSaveOldPtr, skipInvalidPtr *bool, workersPtr *int, defaultInput, defaultOutputDir string, defaultFactor float64) {
	cmd.Flags().StringVarP(inputPtr, "input", "i", defaultInput,
		"Input CSV table")
	cmd.Flags().StringVarP(outputDirPtr, "output-dir", "d", defaultOutputDir,
		"Directory for the optimised table")
	cmd.Flags().Float64VarP(factorPtr, "factor", "f", defaultFactor,
		"Speed-up factor to apply (prompts on a terminal when not given)")
	cmd.Flags().BoolVar(noSaveOldPtr, "no-save-old", false,
		"Do not write the unmodified copy of the input")
	cmd.Flags().BoolVar(skipInvalidPtr, "skip-invalid", false,
		"Leave unreadable cells unchanged instead of failing")
	cmd.Flags().IntVar(workersPtr, "workers", 0,
		"Rows transformed concurrently (0 = number of CPUs)")
}
