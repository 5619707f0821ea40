package handlers

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/concave-dev/qpa/cmd/qpactl/client"
	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/cmd/qpactl/display"
	"github.com/concave-dev/qpa/cmd/qpactl/utils"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/pipeline"
	"github.com/concave-dev/qpa/internal/table"
	"github.com/spf13/cobra"
)

// HandleTransform handles the transform command: rescale every duration in
// the input table and write "<factor>_output.csv" (plus the original copy).
func HandleTransform(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	summary, err := runTransform(cmd)
	if err != nil {
		return err
	}

	display.DisplayTransformSummary(*summary)
	logging.Success("Transformed %d rows by factor %v", summary.Rows, summary.Factor)
	return nil
}

// transformOptions merges transform flags with the config file.
func transformOptions(cmd *cobra.Command) (pipeline.Options, error) {
	file := config.Global.File

	opts := pipeline.Options{
		InputPath:    config.Transform.Input,
		OutputDir:    config.Transform.OutputDir,
		Bounds:       config.Bounds(),
		SaveOriginal: !config.Transform.NoSaveOld,
		Policy:       table.PolicyStrict,
		Workers:      config.Transform.Workers,
	}

	if file != nil {
		if !flagChanged(cmd, "input") && file.Input != "" {
			opts.InputPath = file.Input
		}
		if !flagChanged(cmd, "output-dir") && file.OutputDir != "" {
			opts.OutputDir = file.OutputDir
		}
		if !flagChanged(cmd, "no-save-old") && file.SaveOld != nil {
			opts.SaveOriginal = *file.SaveOld
		}
		if !flagChanged(cmd, "workers") && file.Workers != 0 {
			opts.Workers = file.Workers
		}
		if !flagChanged(cmd, "skip-invalid") && file.Policy != "" {
			policy, err := table.ParsePolicy(file.Policy)
			if err != nil {
				return opts, err
			}
			opts.Policy = policy
		}
	}
	if config.Transform.SkipInvalid {
		opts.Policy = table.PolicySkip
	}

	factor, err := resolveFactor(cmd, config.Transform.Factor)
	if err != nil {
		return opts, err
	}
	opts.Factor = factor

	return opts, nil
}

// runTransform executes the transform locally or on the daemon.
func runTransform(cmd *cobra.Command) (*display.TransformSummary, error) {
	opts, err := transformOptions(cmd)
	if err != nil {
		return nil, err
	}

	if remote() {
		logging.Info("Transforming %s on API server: %s", opts.InputPath, config.Global.APIAddr)
		return transformRemote(opts)
	}

	logging.Info("Transforming %s by factor %v", opts.InputPath, opts.Factor)
	res, err := pipeline.Run(commandContext(cmd), opts)
	if err != nil {
		return nil, err
	}

	return &display.TransformSummary{
		Source:       "local",
		InputPath:    opts.InputPath,
		Factor:       res.Factor,
		OutputPath:   res.OutputPath,
		OriginalPath: res.OriginalPath,
		Rows:         res.Rows,
		Cells:        res.Cells,
		SkippedCount: len(res.Skipped),
		Skipped:      display.SkippedCells(res.Skipped),
		Elapsed:      res.Elapsed,
	}, nil
}

// transformRemote uploads the input table to qpad and writes the returned
// table under the same names a local run would use.
func transformRemote(opts pipeline.Options) (*display.TransformSummary, error) {
	start := time.Now()

	// Fail on a bad factor before reading or uploading anything
	if err := validateFactor(opts.Factor); err != nil {
		return nil, err
	}

	src, err := table.ReadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := table.Write(&body, src); err != nil {
		return nil, err
	}

	res, err := client.CreateAPIClient().TransformTable(body.Bytes(), opts.Factor, opts.Policy)
	if err != nil {
		return nil, err
	}

	out, err := table.Read(bytes.NewReader(res.CSV))
	if err != nil {
		return nil, fmt.Errorf("invalid table returned by API server: %w", err)
	}

	if err := pipeline.EnsureDir(opts.OutputDir); err != nil {
		return nil, err
	}

	summary := &display.TransformSummary{
		Source:       config.Global.APIAddr,
		InputPath:    opts.InputPath,
		Factor:       opts.Factor,
		OutputPath:   filepath.Join(opts.OutputDir, pipeline.OutputFileName(opts.Factor)),
		Rows:         len(out.Rows),
		Cells:        len(out.Rows) * len(out.DurationColumns()),
		SkippedCount: res.Skipped,
		CacheHit:     res.CacheHit,
	}

	if err := table.WriteFile(summary.OutputPath, out); err != nil {
		return nil, err
	}

	if opts.SaveOriginal {
		summary.OriginalPath = filepath.Join(opts.OutputDir, pipeline.OriginalFileName)
		if err := table.WriteFile(summary.OriginalPath, src); err != nil {
			return nil, err
		}
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

// HandlePipeline handles the pipeline command: transform, then visualize the
// table just written.
func HandlePipeline(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	summary, err := runTransform(cmd)
	if err != nil {
		return err
	}
	display.DisplayTransformSummary(*summary)

	// The visualize step reads from wherever transform wrote
	if summary.OutputPath != "" {
		config.Visualize.OutputDir = filepath.Dir(summary.OutputPath)
	}
	return renderInfographic(cmd, summary.OutputPath)
}
