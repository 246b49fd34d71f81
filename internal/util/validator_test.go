package util

import (
	"testing"
)

// TestValidateAmount_Valid covers zero and positive amounts.
func TestValidateAmount_Valid(t *testing.T) {
	testCases := []float64{0, 0.01, 1.0, 50, 100.5, 9999999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}
}

// TestValidateAmount_Negative covers negative amounts.
func TestValidateAmount_Negative(t *testing.T) {
	testCases := []float64{-0.01, -100, -9999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}
