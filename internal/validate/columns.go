package validate

import (
	"fmt"
	"strings"
)

// ColumnNames validates a table header: at least one column, every name
// non-blank and unique. The first column is the row identifier, so a header
// with a single column is valid but carries no durations.
func ColumnNames(header []string) error {
	if len(header) == 0 {
		return fmt.Errorf("header cannot be empty")
	}

	seen := make(map[string]int, len(header))
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("column %d has an empty name", i+1)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("column '%s' appears twice (columns %d and %d)", name, prev+1, i+1)
		}
		seen[name] = i
	}

	return nil
}
