package utils

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/concave-dev/qpa/internal/rescale"
)

// ErrSelectionCancelled is returned when the user declines to pick a file.
var ErrSelectionCancelled = errors.New("selection cancelled")

// LineReader reads one line of user input per call.
type LineReader interface {
	Readline() (string, error)
}

// IsInteractive reports whether stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return readline.DefaultIsTerminal()
}

// NewTerminalReader creates a readline instance showing prompt.
func NewTerminalReader(prompt string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

// FactorPrompt is the text shown when asking for a speed-up factor.
func FactorPrompt(def float64, bounds rescale.Bounds) string {
	return fmt.Sprintf("Enter optimisation speed-up factor (%s, blank = %s): ",
		bounds, rescale.FactorString(def))
}

// PromptFactor reads lines until the user enters a factor within bounds.
// A blank line or end of input selects def; an interrupt aborts.
func PromptFactor(r LineReader, out io.Writer, def float64, bounds rescale.Bounds) (float64, error) {
	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return 0, fmt.Errorf("factor prompt interrupted: %w", err)
		}
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read factor: %w", err)
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			return def, nil
		}

		value, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			fmt.Fprintln(out, "  ✖  Number required.")
			continue
		}
		if err := rescale.Validate(value, bounds); err != nil {
			fmt.Fprintf(out, "  ✖  Enter a value between %s.\n", bounds)
			continue
		}
		return value, nil
	}
}

// SelectionPrompt is the text shown when choosing a CSV file.
const SelectionPrompt = "Select file number to plot (blank = 1, 0 = cancel): "

// SelectFile prints a numbered list of files and reads one choice. A blank
// answer picks the first file, "0" cancels with ErrSelectionCancelled.
func SelectFile(r LineReader, out io.Writer, files []string, names func(string) string) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("no files to select from")
	}

	fmt.Fprintln(out, "\nAvailable optimised CSV files:")
	for i, f := range files {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, names(f))
	}

	line, err := r.Readline()
	if errors.Is(err, io.EOF) {
		return files[0], nil
	}
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrSelectionCancelled
	}
	if err != nil {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}

	choice := strings.TrimSpace(line)
	switch choice {
	case "":
		return files[0], nil
	case "0":
		return "", ErrSelectionCancelled
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(files) {
		return "", fmt.Errorf("invalid selection '%s': choose 1-%d", choice, len(files))
	}
	return files[idx-1], nil
}
