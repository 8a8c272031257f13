package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
	"github.com/iho/minibank/internal/usecase/mocks"
)

func TestStatementUseCase_Statement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := mocks.NewMockTransactionIface(ctrl)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	txManager := mocks.NewMockTransactionManagerIface(ctrl)
	txManager.EXPECT().BeginSnapshot(gomock.Any()).Return(tx, nil)

	clientRepo := mocks.NewMockClientRepositoryIface(ctrl)
	clientRepo.EXPECT().GetByIDTx(gomock.Any(), tx, int64(1)).Return(&domain.Client{
		ID:      1,
		Limit:   100000,
		Balance: -9098,
	}, nil)

	entries := []*domain.TransactionEntry{
		{ID: 12, ClientID: 1, Amount: 10, Kind: domain.KindCredit, Description: "top up", OccurredAt: time.Now().UTC()},
		{ID: 11, ClientID: 1, Amount: 90000, Kind: domain.KindDebit, Description: "rent", OccurredAt: time.Now().UTC()},
	}

	entryRepo := mocks.NewMockEntryRepositoryIface(ctrl)
	entryRepo.EXPECT().ListRecent(gomock.Any(), tx, int64(1), domain.StatementSize).Return(entries, nil)

	resolver := mocks.NewMockClientResolver(ctrl)
	resolver.EXPECT().Resolve(int64(1)).Return(int64(100000), nil)

	uc := usecase.NewStatementUseCase(txManager, clientRepo, entryRepo, resolver)

	statement, err := uc.Statement(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if statement.Balance != -9098 {
		t.Errorf("expected balance -9098, got %d", statement.Balance)
	}
	if statement.Limit != 100000 {
		t.Errorf("expected limit 100000, got %d", statement.Limit)
	}
	if len(statement.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(statement.Entries))
	}
	if statement.Entries[0].ID <= statement.Entries[1].ID {
		t.Error("entries must be newest first")
	}
	if statement.AsOf.IsZero() {
		t.Error("expected AsOf to be set")
	}
}

func TestStatementUseCase_StatementEmptyHistory(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	clientRepo.Seed(&domain.Client{ID: 5, Limit: 500000, Balance: 0})

	uc := usecase.NewStatementUseCase(
		mocks.NewMockTransactionManager(),
		clientRepo,
		mocks.NewMockEntryRepository(),
		mocks.NewMockResolver(map[int64]int64{5: 500000}),
	)

	statement, err := uc.Statement(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Zero entries and the provisioned initial balance is not an error.
	if len(statement.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(statement.Entries))
	}
	if statement.Balance != 0 {
		t.Errorf("expected balance 0, got %d", statement.Balance)
	}
}

func TestStatementUseCase_StatementUnknownClient(t *testing.T) {
	uc := usecase.NewStatementUseCase(
		mocks.NewMockTransactionManager(),
		mocks.NewMockClientRepository(),
		mocks.NewMockEntryRepository(),
		mocks.NewMockResolver(nil),
	)

	_, err := uc.Statement(context.Background(), 999)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

func TestStatementUseCase_StatementSnapshotError(t *testing.T) {
	txManager := mocks.NewMockTransactionManager()
	txManager.BeginSnapshotFunc = func(ctx context.Context) (usecase.Transaction, error) {
		return nil, errors.New("pool exhausted")
	}

	clientRepo := mocks.NewMockClientRepository()
	clientRepo.Seed(&domain.Client{ID: 1, Limit: 1000})

	uc := usecase.NewStatementUseCase(
		txManager,
		clientRepo,
		mocks.NewMockEntryRepository(),
		mocks.NewMockResolver(map[int64]int64{1: 1000}),
	)

	if _, err := uc.Statement(context.Background(), 1); err == nil {
		t.Fatal("expected error, got nil")
	}
}
