// Package table reads, writes and transforms the brute-force duration tables.
//
// A table is a CSV file whose first column identifies the row (for example the
// password length) and whose remaining columns hold duration text such as
// "1.4 hours" or "Instantly". Only the duration columns are ever rewritten.
//
// TABLE LAYOUT:
//   - Header: column names, validated non-blank and unique
//   - Rows: one record per identifier, all the same width as the header
//   - Column 0: identifier, copied through untouched
//   - Columns 1..n: duration text
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/concave-dev/qpa/internal/validate"
)

// IdentifierColumn is the index of the row identifier column.
const IdentifierColumn = 0

// Table is an in-memory CSV table.
type Table struct {
	Header []string
	Rows   [][]string
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := &Table{
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// DurationColumns returns the names of every column after the identifier.
func (t *Table) DurationColumns() []string {
	if len(t.Header) <= 1 {
		return nil
	}
	return append([]string(nil), t.Header[1:]...)
}

// Identifiers returns the identifier cell of every row.
func (t *Table) Identifiers() []string {
	ids := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		ids[i] = row[IdentifierColumn]
	}
	return ids
}

// Validate checks the header and that every row matches its width.
func (t *Table) Validate() error {
	if err := validate.ColumnNames(t.Header); err != nil {
		return fmt.Errorf("invalid table header: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row %d has %d cells, header has %d", i+1, len(row), len(t.Header))
		}
	}
	return nil
}

// Read parses a CSV table from r.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to read CSV: no header row")
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	t := &Table{Header: header, Rows: records[1:]}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadFile reads a CSV table from path. A missing file yields a
// *MissingResourceError.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingResourceError{Path: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Write encodes t as CSV to w.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// WriteFile writes t to path, replacing any existing file.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
