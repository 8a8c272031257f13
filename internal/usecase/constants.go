package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds how long a balance mutation may hold
	// a row lock before the request fails with a transient outcome.
	DefaultTransactionTimeout = 5 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
