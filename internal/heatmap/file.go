package heatmap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/concave-dev/qpa/internal/pipeline"
	"github.com/concave-dev/qpa/internal/table"
)

// InfographicSuffix ends every saved infographic's file name.
const InfographicSuffix = "_infographic.txt"

// InfographicPath returns where the infographic for csvPath is saved. An
// empty outputDir means next to the CSV file.
func InfographicPath(csvPath, outputDir string) string {
	if outputDir == "" {
		outputDir = filepath.Dir(csvPath)
	}
	return filepath.Join(outputDir, pipeline.Stem(csvPath)+InfographicSuffix)
}

// OptionsFor fills in the factor recovered from csvPath's file name.
func OptionsFor(csvPath, title string) Options {
	factor, _ := pipeline.FactorFromFileName(csvPath)
	return Options{Title: title, Factor: factor}
}

// Show reads csvPath and renders it to w.
func Show(w io.Writer, csvPath, title string) error {
	t, err := table.ReadFile(csvPath)
	if err != nil {
		return err
	}
	return Render(w, t, OptionsFor(csvPath, title))
}

// SaveFile renders csvPath into "<stem>_infographic.txt" under outputDir and
// returns the written path.
func SaveFile(csvPath, outputDir, title string) (string, error) {
	t, err := table.ReadFile(csvPath)
	if err != nil {
		return "", err
	}

	out := InfographicPath(csvPath, outputDir)
	if err := pipeline.EnsureDir(filepath.Dir(out)); err != nil {
		return "", err
	}

	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := Render(f, t, OptionsFor(csvPath, title)); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", out, err)
	}
	return out, nil
}
