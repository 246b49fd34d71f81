package util

import "fmt"

// ValidateAmount rejects negative amounts. Zero is allowed.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative, got %f", amount)
	}
	return nil
}
