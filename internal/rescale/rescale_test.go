package rescale

import (
	"errors"
	"testing"

	"github.com/concave-dev/qpa/internal/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescale(t *testing.T) {
	got, err := Rescale(31_557_600, 100)
	require.NoError(t, err)
	assert.Equal(t, 315_576.0, got)
	assert.Equal(t, "3.7 days", duration.Format(got))

	for _, f := range []float64{0, -1} {
		_, err := Rescale(10, f)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFactor))
	}
}

func TestNew(t *testing.T) {
	r, err := New(DefaultFactor, DefaultBounds())
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.Factor())
	assert.Equal(t, 0.6, r.Apply(60))

	tests := []struct {
		name   string
		factor float64
		bounds Bounds
	}{
		{"zero factor", 0, DefaultBounds()},
		{"negative factor", -5, DefaultBounds()},
		{"below min", 0.5, DefaultBounds()},
		{"above max", 2e6, DefaultBounds()},
		{"inverted bounds", 5, Bounds{Min: 10, Max: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.factor, tt.bounds)
			assert.Nil(t, r)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.factor, cerr.Factor)
			assert.True(t, errors.Is(err, ErrInvalidFactor))
		})
	}
}

func TestRescalerText(t *testing.T) {
	r, err := New(100, DefaultBounds())
	require.NoError(t, err)

	tests := []struct {
		in, want string
	}{
		{"Instantly", "Instantly"},
		{"1 second", "Instantly"},
		{"1 minute", "0.6 seconds"},
		{"1 hour", "36 seconds"},
		{"1 year", "3.7 days"},
		{"5m years", "50k years"},
		{"4.2k years", "42 years"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := r.Text(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = r.Text("10 lightyears")
	assert.True(t, errors.Is(err, duration.ErrInvalidDuration))
}

func TestBounds(t *testing.T) {
	b := DefaultBounds()
	assert.True(t, b.Contains(1))
	assert.True(t, b.Contains(1_000_000))
	assert.False(t, b.Contains(0.99))
	assert.Equal(t, "1–1000000", b.String())
	assert.NoError(t, b.Validate())
}

func TestFactorString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{100.0, "100"},
		{100.5, "100_5"},
		{0.25, "0_25"},
		{1_000_000, "1000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FactorString(tt.in))
		back, err := ParseFactorString(tt.want)
		require.NoError(t, err)
		assert.Equal(t, tt.in, back)
	}

	_, err := ParseFactorString("fast")
	assert.Error(t, err)
}
