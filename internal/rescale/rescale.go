// Package rescale applies a speed-up factor to durations: an "old" estimate in
// seconds divided by the factor gives the projected "optimised" estimate.
//
// The factor is validated once, up front, against configured bounds so that a
// bad factor fails before any table cell is touched.
package rescale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/concave-dev/qpa/internal/duration"
	"github.com/concave-dev/qpa/internal/validate"
)

const (
	// DefaultFactor is applied when no factor is configured.
	DefaultFactor = 100.0

	// MinFactor and MaxFactor bound the factor by default.
	MinFactor = 1.0
	MaxFactor = 1_000_000.0
)

// ErrInvalidFactor is matched by every ConfigError.
var ErrInvalidFactor = errors.New("invalid speed-up factor")

// ConfigError reports a factor (or factor bounds) that cannot be used.
type ConfigError struct {
	Factor float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid speed-up factor %v: %s", e.Factor, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidFactor.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidFactor
}

// Bounds is the inclusive range a factor must fall in.
type Bounds struct {
	Min float64 `yaml:"min_factor" json:"minFactor"`
	Max float64 `yaml:"max_factor" json:"maxFactor"`
}

// DefaultBounds returns [MinFactor, MaxFactor].
func DefaultBounds() Bounds {
	return Bounds{Min: MinFactor, Max: MaxFactor}
}

// Validate checks the bounds themselves.
func (b Bounds) Validate() error {
	return validate.ValidateFactorBounds(b.Min, b.Max)
}

// Contains reports whether factor lies within the bounds.
func (b Bounds) Contains(factor float64) bool {
	return factor >= b.Min && factor <= b.Max
}

// String renders the bounds as "min–max".
func (b Bounds) String() string {
	return strconv.FormatFloat(b.Min, 'f', -1, 64) + "–" + strconv.FormatFloat(b.Max, 'f', -1, 64)
}

// Validate checks factor against bounds and returns a *ConfigError on failure.
func Validate(factor float64, bounds Bounds) error {
	if err := bounds.Validate(); err != nil {
		return &ConfigError{Factor: factor, Reason: err.Error()}
	}
	if err := validate.ValidateFactor(factor, bounds.Min, bounds.Max); err != nil {
		return &ConfigError{Factor: factor, Reason: err.Error()}
	}
	return nil
}

// Rescale divides seconds by factor. Only positivity is checked here; range
// checks belong to Validate.
func Rescale(seconds, factor float64) (float64, error) {
	if !(factor > 0) {
		return 0, &ConfigError{Factor: factor, Reason: "factor must be positive"}
	}
	return seconds / factor, nil
}

// Rescaler divides durations by a validated factor.
type Rescaler struct {
	factor float64
}

// New validates factor against bounds and returns a Rescaler for it.
func New(factor float64, bounds Bounds) (*Rescaler, error) {
	if err := Validate(factor, bounds); err != nil {
		return nil, err
	}
	return &Rescaler{factor: factor}, nil
}

// Factor returns the configured factor.
func (r *Rescaler) Factor() float64 {
	return r.factor
}

// Apply divides seconds by the factor.
func (r *Rescaler) Apply(seconds float64) float64 {
	return seconds / r.factor
}

// Text parses duration text, rescales it and formats the result.
func (r *Rescaler) Text(text string) (string, error) {
	seconds, err := duration.Parse(text)
	if err != nil {
		return "", err
	}
	return duration.Format(r.Apply(seconds)), nil
}

// FactorString renders a factor for use in file names: whole factors as
// integers ("100"), others with the decimal point replaced by "_" ("100_5").
func FactorString(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strings.ReplaceAll(strconv.FormatFloat(f, 'f', -1, 64), ".", "_")
}

// ParseFactorString is the inverse of FactorString.
func ParseFactorString(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid factor string '%s': %w", s, err)
	}
	return f, nil
}
