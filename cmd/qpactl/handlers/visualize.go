package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/cmd/qpactl/display"
	"github.com/concave-dev/qpa/cmd/qpactl/utils"
	"github.com/concave-dev/qpa/internal/heatmap"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/pipeline"
	"github.com/spf13/cobra"
)

// visualizeOutputDir is the directory searched for tables and receiving
// infographics: the flag, then the config file, then the default.
func visualizeOutputDir(cmd *cobra.Command) string {
	if !flagChanged(cmd, "output-dir") {
		if f := config.Global.File; f != nil && f.OutputDir != "" {
			return f.OutputDir
		}
	}
	if config.Visualize.OutputDir == "" {
		return config.DefaultOutputDir
	}
	return config.Visualize.OutputDir
}

// visualizeTitle is the infographic title prefix.
func visualizeTitle(cmd *cobra.Command) string {
	if !flagChanged(cmd, "title") {
		if f := config.Global.File; f != nil && f.Title != "" {
			return f.Title
		}
	}
	return config.Visualize.Title
}

// HandleVisualize handles the visualize command: render an optimised table
// as a terminal heat map, prompting for the file when --csv is not given.
func HandleVisualize(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	csvPath, err := selectCSV(cmd)
	if err != nil {
		return err
	}
	return renderInfographic(cmd, csvPath)
}

// selectCSV returns --csv, or asks the user to choose among the optimised
// tables. Without a terminal the first table is used.
func selectCSV(cmd *cobra.Command) (string, error) {
	if config.Visualize.CSV != "" {
		return config.Visualize.CSV, nil
	}

	dir := visualizeOutputDir(cmd)
	files, err := pipeline.ListOutputs(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no '*%s' files found in %s", pipeline.OutputSuffix, dir)
	}

	if !isInteractive() {
		logging.Info("Not on a terminal, visualizing %s", files[0])
		return files[0], nil
	}

	rl, err := openPrompt(utils.SelectionPrompt)
	if err != nil {
		return "", err
	}
	defer rl.Close()

	return utils.SelectFile(rl, display.Out, files, filepath.Base)
}

// renderInfographic shows csvPath and, with --save, writes it to a file.
func renderInfographic(cmd *cobra.Command, csvPath string) error {
	title := visualizeTitle(cmd)

	if config.Global.Output != "json" {
		if err := heatmap.Show(display.Out, csvPath, title); err != nil {
			return err
		}
	}

	if !config.Visualize.Save {
		return nil
	}

	out, err := heatmap.SaveFile(csvPath, visualizeOutputDir(cmd), title)
	if err != nil {
		return err
	}
	display.DisplayInfographicSaved(out)
	logging.Success("Saved infographic for %s", filepath.Base(csvPath))
	return nil
}

// HandleList handles the list command: show the optimised tables available
// for visualize.
func HandleList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	dir := visualizeOutputDir(cmd)
	logging.Info("Listing optimised tables in %s", dir)

	paths, err := pipeline.ListOutputs(dir)
	if err != nil {
		return err
	}

	files := make([]display.OutputFile, 0, len(paths))
	for i, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}
		factor, _ := pipeline.FactorFromFileName(p)
		files = append(files, display.OutputFile{
			Index:    i + 1,
			Name:     filepath.Base(p),
			Path:     p,
			Factor:   factor,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	display.DisplayOutputs(dir, files)
	return nil
}
