package validate

import (
	"fmt"
	"math"
	"strconv"
)

// FactorBounds is the inclusive range a speed-up factor must fall in.
type FactorBounds struct {
	Min float64 `validate:"gt=0"`
	Max float64 `validate:"gtefield=Min"`
}

// ValidateFactorBounds checks that bounds are positive, finite and ordered.
func ValidateFactorBounds(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("factor bounds must be finite, got [%v, %v]", min, max)
	}
	if err := ValidateStruct(FactorBounds{Min: min, Max: max}); err != nil {
		return fmt.Errorf("invalid factor bounds [%v, %v]: min must be > 0 and max >= min", min, max)
	}
	return nil
}

// ValidateFactor checks that factor is positive and within [min, max].
func ValidateFactor(factor, min, max float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("factor must be a finite number, got %v", factor)
	}
	if err := ValidateField(factor, "gt=0"); err != nil {
		return fmt.Errorf("factor must be positive, got %v", factor)
	}
	tag := "gte=" + strconv.FormatFloat(min, 'f', -1, 64) + ",lte=" + strconv.FormatFloat(max, 'f', -1, 64)
	if err := ValidateField(factor, tag); err != nil {
		return fmt.Errorf("factor %v outside [%v, %v]", factor, min, max)
	}
	return nil
}
