// Package display provides output formatting and display functions for qpactl.
//
// This package handles all user-facing output: table output through
// text/tabwriter and indented JSON output, selected by the global --output
// flag. Numbers and file sizes are humanized for the table format and left
// raw in JSON so scripts can consume them.
//
// The display functions handle:
// - Codec results (parse, format, rescale)
// - Transformation summaries and skipped cells
// - Output directory listings
// - Daemon health
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/concave-dev/qpa/cmd/qpactl/client"
	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/table"
	"github.com/dustin/go-humanize"
)

// Out receives all command output.
var Out io.Writer = os.Stdout

// SkippedCell is a cell left unchanged under the skip policy.
type SkippedCell struct {
	Row        int    `json:"row"` // 1-based
	Identifier string `json:"identifier"`
	Column     string `json:"column"`
	Text       string `json:"text"`
	Reason     string `json:"reason"`
}

// SkippedCells converts table cell errors for display.
func SkippedCells(errs []*table.CellError) []SkippedCell {
	cells := make([]SkippedCell, 0, len(errs))
	for _, e := range errs {
		reason := ""
		if e.Err != nil {
			reason = e.Err.Error()
		}
		cells = append(cells, SkippedCell{
			Row:        e.Row + 1,
			Identifier: e.Identifier,
			Column:     e.Header,
			Text:       e.Text,
			Reason:     reason,
		})
	}
	return cells
}

// TransformSummary describes one transform run, local or remote.
type TransformSummary struct {
	Source       string        `json:"source"` // "local" or the daemon address
	InputPath    string        `json:"input"`
	Factor       float64       `json:"factor"`
	OutputPath   string        `json:"output"`
	OriginalPath string        `json:"original,omitempty"`
	Rows         int           `json:"rows"`
	Cells        int           `json:"cells"`
	SkippedCount int           `json:"skippedCount"`
	Skipped      []SkippedCell `json:"skipped,omitempty"`
	CacheHit     bool          `json:"cacheHit,omitempty"`
	Elapsed      time.Duration `json:"elapsed"`
}

// OutputFile is one optimised table found by list.
type OutputFile struct {
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Factor   string    `json:"factor,omitempty"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// encodeJSON writes v as indented JSON.
func encodeJSON(v any) {
	encoder := json.NewEncoder(Out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Fprintln(Out, "Error encoding JSON output")
	}
}

// formatSeconds renders a seconds value with thousands separators, falling
// back to exponent form beyond what grouping keeps readable.
func formatSeconds(seconds float64) string {
	if seconds >= 1e15 {
		return strconv.FormatFloat(seconds, 'e', 3, 64)
	}
	return humanize.CommafWithDigits(seconds, 3)
}

// formatFactor renders a factor as "100×" or "1,000,000×".
func formatFactor(factor float64) string {
	return humanize.Commaf(factor) + "×"
}

// DisplayParseResults shows parsed durations.
func DisplayParseResults(results []client.ParseResult) {
	if config.Global.Output == "json" {
		encodeJSON(results)
		return
	}

	w := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TEXT\tSECONDS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\n", r.Text, formatSeconds(r.Seconds))
	}
}

// DisplayFormatResults shows formatted durations.
func DisplayFormatResults(results []client.FormatResult) {
	if config.Global.Output == "json" {
		encodeJSON(results)
		return
	}

	w := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "SECONDS\tTEXT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\n", formatSeconds(r.Seconds), r.Text)
	}
}

// DisplayRescaleResults shows rescaled durations. Seconds columns are only
// shown in verbose mode.
func DisplayRescaleResults(results []client.RescaleResult) {
	if config.Global.Output == "json" {
		encodeJSON(results)
		return
	}

	w := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if config.Global.Verbose {
		fmt.Fprintln(w, "TEXT\tSECONDS\tFACTOR\tRESCALED\tRESCALED SECONDS")
	} else {
		fmt.Fprintln(w, "TEXT\tFACTOR\tRESCALED")
	}

	for _, r := range results {
		if config.Global.Verbose {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Text, formatSeconds(r.Seconds),
				formatFactor(r.Factor), r.RescaledText, formatSeconds(r.RescaledSeconds))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Text, formatFactor(r.Factor), r.RescaledText)
		}
	}
}

// DisplayTransformSummary reports the files a transform wrote.
func DisplayTransformSummary(s TransformSummary) {
	if config.Global.Output == "json" {
		encodeJSON(s)
		return
	}

	fmt.Fprintf(Out, "\n✓ Speed-up factor applied: %s\n", formatFactor(s.Factor))
	if s.OriginalPath != "" {
		fmt.Fprintf(Out, "✓ Wrote %s\n", s.OriginalPath)
	}
	fmt.Fprintf(Out, "✓ Wrote %s\n", s.OutputPath)

	if config.Global.Verbose {
		fmt.Fprintf(Out, "  %s rows, %s cells in %v (%s)\n",
			humanize.Comma(int64(s.Rows)), humanize.Comma(int64(s.Cells)),
			s.Elapsed.Round(time.Microsecond), s.Source)
		if s.CacheHit {
			fmt.Fprintln(Out, "  served from daemon cache")
		}
	}

	if s.SkippedCount == 0 {
		return
	}

	fmt.Fprintf(Out, "\n⚠ %d %s left unchanged:\n", s.SkippedCount, pluralCells(s.SkippedCount))
	if len(s.Skipped) == 0 {
		return
	}

	w := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ROW\tIDENTIFIER\tCOLUMN\tTEXT\tREASON")
	for _, c := range s.Skipped {
		fmt.Fprintf(w, "%d\t%s\t%s\t%q\t%s\n", c.Row, c.Identifier, c.Column, c.Text, c.Reason)
	}
}

func pluralCells(n int) string {
	if n == 1 {
		return "cell"
	}
	return "cells"
}

// DisplayOutputs lists optimised tables found in dir.
func DisplayOutputs(dir string, files []OutputFile) {
	if config.Global.Output == "json" {
		if files == nil {
			files = []OutputFile{}
		}
		encodeJSON(files)
		return
	}

	if len(files) == 0 {
		fmt.Fprintf(Out, "No '*_output.csv' files found in %s\n", dir)
		return
	}

	fmt.Fprintf(Out, "\nFound %d CSV files in %s:\n", len(files), dir)

	w := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if config.Global.Verbose {
		fmt.Fprintln(w, "  #\tNAME\tFACTOR\tSIZE\tMODIFIED")
	}
	for _, f := range files {
		if !config.Global.Verbose {
			fmt.Fprintf(w, "  [%d] %s\n", f.Index, f.Name)
			continue
		}
		factor := f.Factor
		if factor == "" {
			factor = "-"
		}
		fmt.Fprintf(w, "  [%d]\t%s\t%s\t%s\t%s\n", f.Index, f.Name, factor,
			humanize.Bytes(uint64(f.Size)), humanize.Time(f.Modified))
	}
}

// DisplayHealth shows daemon status.
func DisplayHealth(addr string, h *client.Health) {
	if config.Global.Output == "json" {
		encodeJSON(h)
		return
	}

	fmt.Fprintf(Out, "qpad at %s\n", addr)
	fmt.Fprintf(Out, "  Status:  %s\n", h.Status)
	fmt.Fprintf(Out, "  Version: %s\n", h.Version)
	fmt.Fprintf(Out, "  Uptime:  %s\n", h.Uptime)
	fmt.Fprintf(Out, "  Factors: %s – %s\n", humanize.Commaf(h.MinFactor), humanize.Commaf(h.MaxFactor))
}

// DisplayInfographicSaved reports a saved infographic file.
func DisplayInfographicSaved(path string) {
	if config.Global.Output == "json" {
		encodeJSON(map[string]string{"infographic": path})
		return
	}
	fmt.Fprintf(Out, "✓ Wrote %s\n", path)
}
