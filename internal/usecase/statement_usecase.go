package usecase

import (
	"context"
	"time"

	"github.com/iho/minibank/internal/domain"
)

// StatementUseCase serves the statement view: current balance plus the most
// recent transaction entries, newest first, read within one consistent
// snapshot so the balance is never staler than the entries shown.
type StatementUseCase struct {
	txManager  TransactionManager
	clientRepo ClientRepository
	entryRepo  EntryRepository
	resolver   ClientResolver
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(
	txManager TransactionManager,
	clientRepo ClientRepository,
	entryRepo EntryRepository,
	resolver ClientResolver,
) *StatementUseCase {
	return &StatementUseCase{
		txManager:  txManager,
		clientRepo: clientRepo,
		entryRepo:  entryRepo,
		resolver:   resolver,
	}
}

// Statement returns the client's current balance, limit and the last
// entries. No row lock is taken; the snapshot transaction does not block
// concurrent mutators.
func (uc *StatementUseCase) Statement(ctx context.Context, clientID int64) (*domain.Statement, error) {
	if _, err := uc.resolver.Resolve(clientID); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	client, err := uc.clientRepo.GetByIDTx(ctx, tx, clientID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListRecent(ctx, tx, clientID, domain.StatementSize)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &domain.Statement{
		ClientID: client.ID,
		Balance:  client.Balance,
		Limit:    client.Limit,
		AsOf:     time.Now().UTC(),
		Entries:  entries,
	}, nil
}
