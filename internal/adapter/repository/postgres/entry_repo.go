package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

const (
	createEntry = `INSERT INTO transaction_entries (client_id, amount, kind, description, occurred_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	// Descending id gives newest-first; id is monotonic with insertion
	// order, so ties in occurred_at are broken correctly. Served by the
	// (client_id, id DESC) index.
	listRecentEntries = `SELECT id, client_id, amount, kind, description, occurred_at
FROM transaction_entries
WHERE client_id = $1
ORDER BY id DESC
LIMIT $2`
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

// Create appends a new immutable entry within the given transaction and
// fills in the store-assigned id.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.TransactionEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	return pgxTx.QueryRow(ctx, createEntry,
		entry.ClientID,
		entry.Amount,
		string(entry.Kind),
		entry.Description,
		entry.OccurredAt,
	).Scan(&entry.ID)
}

// ListRecent retrieves the most recent entries for a client, newest first,
// within the given transaction.
func (r *EntryRepository) ListRecent(ctx context.Context, tx usecase.Transaction, clientID int64, limit int) ([]*domain.TransactionEntry, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, listRecentEntries, clientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.TransactionEntry, 0, limit)

	for rows.Next() {
		var (
			e    domain.TransactionEntry
			kind string
		)

		if err := rows.Scan(&e.ID, &e.ClientID, &e.Amount, &kind, &e.Description, &e.OccurredAt); err != nil {
			return nil, err
		}

		e.Kind = domain.TransactionKind(kind)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
