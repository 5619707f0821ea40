package table

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Policy decides what happens when a cell cannot be transformed.
type Policy int

const (
	// PolicyStrict aborts the run and reports the first failing cell in
	// row-major order.
	PolicyStrict Policy = iota

	// PolicySkip keeps the failing cell's original text and reports every
	// skipped cell, sorted by row then column.
	PolicySkip
)

// String returns the policy name used on the command line and in the API.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts "strict" or "skip" to a Policy. Empty means strict.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "strict":
		return PolicyStrict, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyStrict, fmt.Errorf("unknown policy '%s' (want strict or skip)", s)
	}
}

// CellFunc rewrites a single duration cell.
type CellFunc func(text string) (string, error)

// Options configure Transform.
type Options struct {
	Policy Policy

	// Workers bounds the number of rows transformed at once. Zero means
	// GOMAXPROCS.
	Workers int
}

// Result is the outcome of a Transform.
type Result struct {
	Table   *Table
	Skipped []*CellError
}

// Transform applies fn to every duration cell of t and returns a new table
// with the same header, row order and shape. t is not modified. Rows are
// processed concurrently; each output cell lands at its source position.
func Transform(ctx context.Context, t *Table, fn CellFunc, opts Options) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := t.Clone()
	rowErrs := make([][]*CellError, len(t.Rows))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range t.Rows {
		if gctx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			row := out.Rows[i]
			for col := IdentifierColumn + 1; col < len(row); col++ {
				text := t.Rows[i][col]
				rewritten, err := fn(text)
				if err != nil {
					cerr := &CellError{
						Row:        i,
						Column:     col,
						Identifier: t.Rows[i][IdentifierColumn],
						Header:     t.Header[col],
						Text:       text,
						Err:        err,
					}
					rowErrs[i] = append(rowErrs[i], cerr)
					if opts.Policy == PolicyStrict {
						return cerr
					}
					continue
				}
				row[col] = rewritten
			}
			return nil
		})
	}

	waitErr := eg.Wait()

	// Rows are launched in order and a launched row always runs to completion,
	// so the earliest recorded error is the first bad cell in row-major order.
	var skipped []*CellError
	for _, errs := range rowErrs {
		if len(errs) == 0 {
			continue
		}
		if opts.Policy == PolicyStrict {
			return nil, errs[0]
		}
		skipped = append(skipped, errs...)
	}
	if waitErr != nil {
		return nil, fmt.Errorf("transform cancelled: %w", waitErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("transform cancelled: %w", err)
	}

	sort.SliceStable(skipped, func(a, b int) bool {
		if skipped[a].Row != skipped[b].Row {
			return skipped[a].Row < skipped[b].Row
		}
		return skipped[a].Column < skipped[b].Column
	})

	return &Result{Table: out, Skipped: skipped}, nil
}
