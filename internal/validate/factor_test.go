package validate

import (
	"math"
	"strings"
	"testing"
)

// TestValidateFactor covers the positive and bounded checks
func TestValidateFactor(t *testing.T) {
	tests := []struct {
		name        string
		factor      float64
		expectError bool
		errContains string
	}{
		{name: "default factor", factor: 100},
		{name: "lower bound inclusive", factor: 1},
		{name: "upper bound inclusive", factor: 1_000_000},
		{name: "fractional factor", factor: 2.5},
		{name: "zero", factor: 0, expectError: true, errContains: "positive"},
		{name: "negative", factor: -10, expectError: true, errContains: "positive"},
		{name: "below bounds", factor: 0.5, expectError: true, errContains: "outside"},
		{name: "above bounds", factor: 1_000_001, expectError: true, errContains: "outside"},
		{name: "NaN", factor: math.NaN(), expectError: true, errContains: "finite"},
		{name: "infinity", factor: math.Inf(1), expectError: true, errContains: "finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFactor(tt.factor, 1, 1_000_000)
			if !tt.expectError {
				if err != nil {
					t.Errorf("ValidateFactor(%v) unexpected error: %v", tt.factor, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateFactor(%v) expected error, got none", tt.factor)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("ValidateFactor(%v) error = %q, want it to contain %q", tt.factor, err, tt.errContains)
			}
		})
	}
}

// TestValidateFactorBounds checks ordering and positivity of the bounds
func TestValidateFactorBounds(t *testing.T) {
	tests := []struct {
		name        string
		min, max    float64
		expectError bool
	}{
		{name: "defaults", min: 1, max: 1_000_000},
		{name: "single value range", min: 10, max: 10},
		{name: "fractional min", min: 0.1, max: 5},
		{name: "zero min", min: 0, max: 10, expectError: true},
		{name: "inverted", min: 10, max: 1, expectError: true},
		{name: "infinite max", min: 1, max: math.Inf(1), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFactorBounds(tt.min, tt.max)
			if tt.expectError && err == nil {
				t.Errorf("ValidateFactorBounds(%v, %v) expected error, got none", tt.min, tt.max)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateFactorBounds(%v, %v) unexpected error: %v", tt.min, tt.max, err)
			}
		})
	}
}
