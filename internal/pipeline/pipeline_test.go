package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/concave-dev/qpa/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputCSV = `Number of Characters,Numbers,Lowercase Letters
4,Instantly,Instantly
8,Instantly,1.4 hours
12,1 minute,1 year
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	input := writeInput(t, inputCSV)
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	res, err := Run(context.Background(), Options{
		InputPath:    input,
		OutputDir:    outDir,
		Factor:       100,
		SaveOriginal: true,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "100_output.csv"), res.OutputPath)
	assert.Equal(t, filepath.Join(outDir, OriginalFileName), res.OriginalPath)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 6, res.Cells)
	assert.Empty(t, res.Skipped)

	opt, err := table.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "0.6 seconds", "3.7 days"}, opt.Rows[2])
	assert.Equal(t, []string{"8", "Instantly", "50.4 seconds"}, opt.Rows[1])

	orig, err := os.ReadFile(res.OriginalPath)
	require.NoError(t, err)
	assert.Equal(t, inputCSV, string(orig))
}

func TestRunWithoutOriginal(t *testing.T) {
	input := writeInput(t, inputCSV)
	outDir := t.TempDir()

	res, err := Run(context.Background(), Options{InputPath: input, OutputDir: outDir, Factor: 100.5})
	require.NoError(t, err)
	assert.Empty(t, res.OriginalPath)
	assert.Equal(t, "100_5_output.csv", filepath.Base(res.OutputPath))

	_, err = os.Stat(filepath.Join(outDir, OriginalFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestRunInvalidFactorTouchesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	// Input does not exist either; the factor must be reported first.
	_, err := Run(context.Background(), Options{InputPath: "missing.csv", OutputDir: outDir, Factor: 0})
	assert.True(t, errors.Is(err, rescale.ErrInvalidFactor))

	_, err = os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(context.Background(), Options{
		InputPath: filepath.Join(t.TempDir(), "missing.csv"),
		OutputDir: t.TempDir(),
		Factor:    100,
	})
	assert.True(t, errors.Is(err, table.ErrMissingResource))
}

func TestRunPolicies(t *testing.T) {
	input := writeInput(t, inputCSV+"16,banana,1 year\n")

	_, err := Run(context.Background(), Options{InputPath: input, OutputDir: t.TempDir(), Factor: 100})
	var cerr *table.CellError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "banana", cerr.Text)

	res, err := Run(context.Background(), Options{
		InputPath: input,
		OutputDir: t.TempDir(),
		Factor:    100,
		Policy:    table.PolicySkip,
	})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 3, res.Skipped[0].Row)
}

func TestRunCustomBounds(t *testing.T) {
	input := writeInput(t, inputCSV)
	_, err := Run(context.Background(), Options{
		InputPath: input,
		OutputDir: t.TempDir(),
		Factor:    100,
		Bounds:    rescale.Bounds{Min: 1, Max: 50},
	})
	assert.True(t, errors.Is(err, rescale.ErrInvalidFactor))
}
