package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

const (
	getClientByID = `SELECT id, "limit", balance, created_at FROM clients WHERE id = $1`

	getClientByIDForUpdate = `SELECT id, "limit", balance, created_at FROM clients WHERE id = $1 FOR UPDATE`

	updateClientBalance = `UPDATE clients SET balance = $2 WHERE id = $1`

	listAllClients = `SELECT id, "limit", balance, created_at FROM clients ORDER BY id`
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// GetByID retrieves a client by id.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return scanClient(r.pool.QueryRow(ctx, getClientByID, id))
}

// GetByIDTx retrieves a client by id within an existing transaction, without
// taking any lock.
func (r *ClientRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Client, error) {
	pgxTx := tx.(*Tx).PgxTx()

	return scanClient(pgxTx.QueryRow(ctx, getClientByID, id))
}

// GetByIDForUpdate retrieves a client by id with a FOR UPDATE row lock.
// Concurrent mutators for the same client block here until the holder
// commits or rolls back; mutators for different clients proceed
// independently.
func (r *ClientRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Client, error) {
	pgxTx := tx.(*Tx).PgxTx()

	return scanClient(pgxTx.QueryRow(ctx, getClientByIDForUpdate, id))
}

// UpdateBalance sets the balance of a client within the given transaction.
func (r *ClientRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance int64) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, updateClientBalance, id, balance)

	return err
}

// ListAll lists the full provisioned client set, for the registry preload.
func (r *ClientRepository) ListAll(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.pool.Query(ctx, listAllClients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client

	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Limit, &c.Balance, &c.CreatedAt); err != nil {
			return nil, err
		}

		clients = append(clients, &c)
	}

	return clients, rows.Err()
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client

	err := row.Scan(&c.ID, &c.Limit, &c.Balance, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	return &c, nil
}
