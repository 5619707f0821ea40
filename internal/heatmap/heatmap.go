// Package heatmap renders a duration table as a coloured terminal infographic.
//
// Every duration cell keeps its text and is shaded by its magnitude on a log
// scale, short durations in yellow and long ones in deep purple (a reversed
// viridis ramp). Output written to a terminal is coloured; output written to a
// file or pipe degrades to a plain bordered table.
//
// INFOGRAPHIC LAYOUT:
//   - Title: "<title> (Optimised ×<factor>)" when the factor is known
//   - Table: identifier column followed by the shaded duration columns
//   - Legend: the palette with the shortest and longest durations at each end
package heatmap

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/concave-dev/qpa/internal/duration"
	"github.com/concave-dev/qpa/internal/table"
)

// DefaultTitle prefixes every infographic title unless overridden.
const DefaultTitle = "Quantum Brute-Force Durations"

// Palette is the reversed viridis ramp, shortest durations first.
var Palette = []string{
	"#FDE725", "#B4DE2C", "#6DCD59", "#35B779", "#1F9E89",
	"#26828E", "#31688E", "#3E4A89", "#482878", "#440154",
}

// darkText marks the palette entries light enough to need dark text.
const darkText = 4

// Options configure Render.
type Options struct {
	// Title is the title prefix; DefaultTitle when empty.
	Title string

	// Factor is the speed-up factor shown after the title, as written in
	// the source file name ("100", "100.5"). Empty omits it.
	Factor string
}

// FullTitle returns the title line for opts.
func (o Options) FullTitle() string {
	title := o.Title
	if title == "" {
		title = DefaultTitle
	}
	if o.Factor != "" {
		title += fmt.Sprintf(" (Optimised ×%s)", o.Factor)
	}
	return title
}

// Scale maps seconds onto palette levels on a log10 axis.
type Scale struct {
	Min float64
	Max float64
}

// floor keeps "Instantly" cells on a finite log axis.
func floor(seconds float64) float64 {
	if math.IsNaN(seconds) || seconds < duration.InstantThreshold {
		return duration.InstantThreshold
	}
	return seconds
}

// NewScale spans every value in matrix.
func NewScale(matrix [][]float64) Scale {
	s := Scale{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, row := range matrix {
		for _, v := range row {
			v = floor(v)
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
	}
	if math.IsInf(s.Min, 1) {
		return Scale{Min: duration.InstantThreshold, Max: duration.InstantThreshold}
	}
	return s
}

// Level returns the palette index for seconds, 0 for the shortest.
func (s Scale) Level(seconds float64) int {
	lo, hi := math.Log10(floor(s.Min)), math.Log10(floor(s.Max))
	if hi <= lo {
		return 0
	}
	frac := (math.Log10(floor(seconds)) - lo) / (hi - lo)
	frac = math.Max(0, math.Min(1, frac))
	return int(math.Floor(frac*float64(len(Palette)-1) + 0.5))
}

// Render writes the infographic for t to w.
func Render(w io.Writer, t *table.Table, opts Options) error {
	matrix, err := table.Seconds(t)
	if err != nil {
		return fmt.Errorf("failed to read durations: %w", err)
	}
	scale := NewScale(matrix)

	re := lipgloss.NewRenderer(w)
	titleStyle := re.NewStyle().Bold(true).MarginBottom(1)
	headerStyle := re.NewStyle().Bold(true).Padding(0, 1)
	idStyle := re.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Right)
	cellStyle := re.NewStyle().Padding(0, 1).Align(lipgloss.Center)

	tbl := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))).
		Headers(t.Header...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return headerStyle
			case col == table.IdentifierColumn:
				return idStyle
			}
			level := scale.Level(matrix[row][col-1])
			fg := lipgloss.Color("#FFFFFF")
			if level < darkText {
				fg = lipgloss.Color("#1B1B1B")
			}
			return cellStyle.Background(lipgloss.Color(Palette[level])).Foreground(fg)
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(opts.FullTitle()))
	b.WriteString("\n")
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	b.WriteString(legend(re, scale))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write infographic: %w", err)
	}
	return nil
}

// legend renders the palette between the scale's end points.
func legend(re *lipgloss.Renderer, s Scale) string {
	var swatches strings.Builder
	for _, c := range Palette {
		swatches.WriteString(re.NewStyle().Foreground(lipgloss.Color(c)).Render("█"))
	}
	lo := duration.Format(s.Min)
	if s.Min <= duration.InstantThreshold {
		lo = duration.Instantly
	}
	return fmt.Sprintf("%s %s %s  (seconds, log scale)", lo, swatches.String(), duration.Format(s.Max))
}
