package table

import "github.com/concave-dev/qpa/internal/duration"

// Seconds parses every duration cell of t. The returned matrix has one row per
// table row and one column per duration column.
func Seconds(t *Table) ([][]float64, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	out := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		values := make([]float64, 0, len(row)-1)
		for col := IdentifierColumn + 1; col < len(row); col++ {
			s, err := duration.Parse(row[col])
			if err != nil {
				return nil, &CellError{
					Row:        i,
					Column:     col,
					Identifier: row[IdentifierColumn],
					Header:     t.Header[col],
					Text:       row[col],
					Err:        err,
				}
			}
			values = append(values, s)
		}
		out[i] = values
	}
	return out, nil
}
