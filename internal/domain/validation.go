package domain

import (
	"fmt"
	"unicode/utf8"
)

// Validation constants
const (
	MinDescriptionLength = 1
	MaxDescriptionLength = 10
)

// ValidateAmount validates a transaction amount.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateKind validates a transaction kind.
func ValidateKind(kind TransactionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidKind, string(kind))
	}
	return nil
}

// ValidateDescription validates a transaction description.
func ValidateDescription(description string) error {
	n := utf8.RuneCountInString(description)
	if n < MinDescriptionLength || n > MaxDescriptionLength {
		return fmt.Errorf("%w: got %d characters", ErrInvalidDescription, n)
	}
	return nil
}

// ValidateTransaction validates all fields of a transaction request before
// any store interaction.
func ValidateTransaction(amount int64, kind TransactionKind, description string) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := ValidateKind(kind); err != nil {
		return err
	}
	return ValidateDescription(description)
}
