// Package pipeline runs the file-level transformation: read an input table,
// rescale every duration by the speed-up factor and write the optimised table
// (plus, optionally, a copy of the original) into an output directory.
//
// OUTPUT FILES:
//   - <factor>_output.csv: the optimised table, factor rendered by
//     rescale.FactorString ("100", "100_5")
//   - password_bruteforce_old.csv: the input re-serialised, when SaveOriginal is set
//
// The factor is validated before any file is touched, so a bad factor never
// leaves a partial output directory behind.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/concave-dev/qpa/internal/table"
)

const (
	// DefaultInputPath is read when no input is given.
	DefaultInputPath = "data/input/input.csv"

	// DefaultOutputDir receives the generated files.
	DefaultOutputDir = "data/output"

	// OutputSuffix ends every optimised table's file name.
	OutputSuffix = "_output.csv"

	// OriginalFileName is the name of the saved copy of the input.
	OriginalFileName = "password_bruteforce_old.csv"
)

// Options configure Run.
type Options struct {
	InputPath    string
	OutputDir    string
	Factor       float64
	Bounds       rescale.Bounds
	SaveOriginal bool
	Policy       table.Policy
	Workers      int
}

// Result describes the files a Run produced.
type Result struct {
	Factor       float64
	OutputPath   string
	OriginalPath string // empty unless SaveOriginal
	Rows         int
	Cells        int
	Skipped      []*table.CellError
	Elapsed      time.Duration
}

// OutputFileName returns the optimised table's file name for factor.
func OutputFileName(factor float64) string {
	return rescale.FactorString(factor) + OutputSuffix
}

// Run executes the transformation described by opts.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	bounds := opts.Bounds
	if bounds == (rescale.Bounds{}) {
		bounds = rescale.DefaultBounds()
	}
	r, err := rescale.New(opts.Factor, bounds)
	if err != nil {
		return nil, err
	}

	inputPath := opts.InputPath
	if inputPath == "" {
		inputPath = DefaultInputPath
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	logging.Debug("Reading input table %s", inputPath)
	src, err := table.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	if err := EnsureDir(outputDir); err != nil {
		return nil, err
	}

	logging.Debug("Rescaling %d rows by factor %v (policy %s)", len(src.Rows), opts.Factor, opts.Policy)
	res, err := table.Transform(ctx, src, r.Text, table.Options{Policy: opts.Policy, Workers: opts.Workers})
	if err != nil {
		return nil, fmt.Errorf("failed to transform %s: %w", inputPath, err)
	}
	for _, skipped := range res.Skipped {
		logging.Warn("Skipped %v", skipped)
	}

	result := &Result{
		Factor:     opts.Factor,
		OutputPath: filepath.Join(outputDir, OutputFileName(opts.Factor)),
		Rows:       len(src.Rows),
		Cells:      len(src.Rows) * len(src.DurationColumns()),
		Skipped:    res.Skipped,
	}

	if err := table.WriteFile(result.OutputPath, res.Table); err != nil {
		return nil, err
	}
	logging.Debug("Wrote %s", result.OutputPath)

	if opts.SaveOriginal {
		result.OriginalPath = filepath.Join(outputDir, OriginalFileName)
		if err := table.WriteFile(result.OriginalPath, src); err != nil {
			return nil, err
		}
		logging.Debug("Wrote %s", result.OriginalPath)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}
