package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
	"github.com/iho/minibank/tests/testutil"
)

func TestTransactionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	t.Run("credit then debit", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		testDB.CreateTestClient(ctx, 1, 1000, 0)
		uc, _ := newTransactionUseCase(t, testDB)

		result, err := uc.Apply(ctx, usecase.ApplyTransactionInput{
			ClientID: 1, Amount: 500, Kind: domain.KindCredit, Description: "salary",
		})
		if err != nil {
			t.Fatalf("credit failed: %v", err)
		}
		if result.Balance != 500 || result.Limit != 1000 {
			t.Fatalf("unexpected result after credit: %+v", result)
		}

		result, err = uc.Apply(ctx, usecase.ApplyTransactionInput{
			ClientID: 1, Amount: 1200, Kind: domain.KindDebit, Description: "rent",
		})
		if err != nil {
			t.Fatalf("debit failed: %v", err)
		}
		if result.Balance != -700 {
			t.Fatalf("expected balance -700, got %d", result.Balance)
		}
	})

	t.Run("debit to exactly the limit", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		testDB.CreateTestClient(ctx, 1, 1000, 0)
		uc, _ := newTransactionUseCase(t, testDB)

		result, err := uc.Apply(ctx, usecase.ApplyTransactionInput{
			ClientID: 1, Amount: 1000, Kind: domain.KindDebit, Description: "max",
		})
		if err != nil {
			t.Fatalf("debit to limit must succeed: %v", err)
		}
		if result.Balance != -1000 {
			t.Fatalf("expected balance -1000, got %d", result.Balance)
		}
	})

	t.Run("debit past the limit is rejected atomically", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		testDB.CreateTestClient(ctx, 1, 1000, 0)
		uc, _ := newTransactionUseCase(t, testDB)

		_, err := uc.Apply(ctx, usecase.ApplyTransactionInput{
			ClientID: 1, Amount: 1001, Kind: domain.KindDebit, Description: "toomuch",
		})
		if !errors.Is(err, domain.ErrLimitExceeded) {
			t.Fatalf("expected ErrLimitExceeded, got %v", err)
		}

		if got := testDB.EntryCount(ctx, 1); got != 0 {
			t.Errorf("rejected debit must leave no entry, found %d", got)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		testDB.CreateTestClient(ctx, 1, 1000, 0)
		uc, _ := newTransactionUseCase(t, testDB)

		_, err := uc.Apply(ctx, usecase.ApplyTransactionInput{
			ClientID: 99, Amount: 1, Kind: domain.KindCredit, Description: "x",
		})
		if !errors.Is(err, domain.ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}
