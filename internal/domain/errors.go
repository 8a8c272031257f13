package domain

import "errors"

var (
	// Client errors
	ErrClientNotFound = errors.New("client not found")
	ErrLimitExceeded  = errors.New("debit would exceed overdraft limit")

	// Validation errors
	ErrInvalidAmount      = errors.New("amount must be a positive integer")
	ErrInvalidKind        = errors.New("kind must be credit or debit")
	ErrInvalidDescription = errors.New("description must be 1 to 10 characters")

	// ErrTransient signals store contention or unavailability after internal
	// retries were exhausted. Safe to retry at the caller's discretion.
	ErrTransient = errors.New("transient storage error")
)
