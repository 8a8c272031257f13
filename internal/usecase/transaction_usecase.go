package usecase

import (
	"context"
	"time"

	"github.com/iho/minibank/internal/domain"
)

// TransactionUseCase applies credit and debit transactions against client
// balances. Concurrent applications for the same client serialize on a
// per-row lock held for the duration of the read-check-write sequence, so no
// two debits can pass the limit check against the same stale balance.
type TransactionUseCase struct {
	txManager  TransactionManager
	clientRepo ClientRepository
	entryRepo  EntryRepository
	resolver   ClientResolver
	retrier    Retrier
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	clientRepo ClientRepository,
	entryRepo EntryRepository,
	resolver ClientResolver,
	retrier Retrier,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:  txManager,
		clientRepo: clientRepo,
		entryRepo:  entryRepo,
		resolver:   resolver,
		retrier:    retrier,
	}
}

// ApplyTransactionInput represents input for applying a transaction.
type ApplyTransactionInput struct {
	ClientID    int64
	Amount      int64
	Kind        domain.TransactionKind
	Description string
}

// ApplyTransactionResult is the post-commit balance and the client's limit.
type ApplyTransactionResult struct {
	Balance int64
	Limit   int64
}

// Apply atomically commits a transaction entry together with the resulting
// balance, or rejects the request without touching persisted state.
func (uc *TransactionUseCase) Apply(ctx context.Context, input ApplyTransactionInput) (*ApplyTransactionResult, error) {
	// 1. Validate before any store interaction.
	if err := domain.ValidateTransaction(input.Amount, input.Kind, input.Description); err != nil {
		return nil, err
	}

	// 2. Unknown ids are rejected without opening a transaction. The client
	// set is static, so a registry miss is authoritative.
	if _, err := uc.resolver.Resolve(input.ClientID); err != nil {
		return nil, err
	}

	// 3. Locked read-check-write, retried on transient conflicts.
	var result *ApplyTransactionResult

	err := uc.retrier.Retry(ctx, func() error {
		r, err := uc.applyOnce(ctx, input)
		if err != nil {
			return err
		}

		result = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *TransactionUseCase) applyOnce(ctx context.Context, input ApplyTransactionInput) (*ApplyTransactionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	client, err := uc.clientRepo.GetByIDForUpdate(ctx, tx, input.ClientID)
	if err != nil {
		return nil, err
	}

	if input.Kind == domain.KindDebit {
		if err := client.ValidateDebit(input.Amount); err != nil {
			return nil, err
		}
	}

	newBalance := client.Balance + input.Kind.Delta(input.Amount)
	now := time.Now().UTC()

	entry := &domain.TransactionEntry{
		ClientID:    client.ID,
		Amount:      input.Amount,
		Kind:        input.Kind,
		Description: input.Description,
		OccurredAt:  now,
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.clientRepo.UpdateBalance(ctx, tx, client.ID, newBalance); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &ApplyTransactionResult{
		Balance: newBalance,
		Limit:   client.Limit,
	}, nil
}
