package validate

import "testing"

// TestColumnNames tests header validation
func TestColumnNames(t *testing.T) {
	tests := []struct {
		name        string
		header      []string
		expectError bool
	}{
		{name: "identifier only", header: []string{"Number of Characters"}},
		{name: "identifier and tiers", header: []string{"Number of Characters", "Numbers Only", "Lowercase Letters"}},
		{name: "empty header", header: nil, expectError: true},
		{name: "blank column", header: []string{"Number of Characters", "  "}, expectError: true},
		{name: "duplicate column", header: []string{"id", "Numbers Only", "Numbers Only"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ColumnNames(tt.header)
			if tt.expectError && err == nil {
				t.Errorf("ColumnNames(%q) expected error, got none", tt.header)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ColumnNames(%q) unexpected error: %v", tt.header, err)
			}
		})
	}
}
