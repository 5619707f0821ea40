package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/concave-dev/qpa/internal/rescale"
)

// factorPrefix matches the factor at the start of a file stem: "100_output",
// "100_5_output", "2.5_output".
var factorPrefix = regexp.MustCompile(`^(\d+(?:[._]\d+)?)_`)

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ListOutputs returns the optimised tables in dir, sorted by name. A missing
// directory yields an empty list.
func ListOutputs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+OutputSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Stem returns the file name without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FactorFromFileName recovers the factor embedded in a file name such as
// "100_5_output.csv". It returns the factor as written ("100.5") and whether
// one was found.
func FactorFromFileName(path string) (string, bool) {
	m := factorPrefix.FindStringSubmatch(Stem(path))
	if m == nil {
		return "", false
	}
	return strings.ReplaceAll(m[1], "_", "."), true
}

// ParseFactorFromFileName is FactorFromFileName returning a number.
func ParseFactorFromFileName(path string) (float64, error) {
	s, ok := FactorFromFileName(path)
	if !ok {
		return 0, fmt.Errorf("no factor in file name %s", filepath.Base(path))
	}
	return rescale.ParseFactorString(s)
}
