package usecase

import (
	"context"
	"time"

	"github.com/iho/minibank/internal/domain"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByIDTx(ctx context.Context, tx Transaction, id int64) (*domain.Client, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Client, error)
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance int64) error
	ListAll(ctx context.Context) ([]*domain.Client, error)
}

// EntryRepository defines data access for transaction entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.TransactionEntry) error
	ListRecent(ctx context.Context, tx Transaction, clientID int64, limit int) ([]*domain.TransactionEntry, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle. Begin starts a
// read-write transaction; BeginSnapshot starts a read-only transaction at a
// consistent snapshot for statement reads.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
	BeginSnapshot(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient store conflicts a bounded number
// of times before surfacing the failure.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// ClientResolver resolves a client id to its fixed overdraft limit.
type ClientResolver interface {
	Resolve(id int64) (int64, error)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
