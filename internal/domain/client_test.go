package domain

import (
	"errors"
	"testing"
)

func TestClientValidateDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		limit   int64
		amount  int64
		wantErr error
	}{
		{
			name:    "debit within limit",
			balance: 0,
			limit:   1000,
			amount:  500,
			wantErr: nil,
		},
		{
			name:    "debit to exactly minus limit",
			balance: 0,
			limit:   1000,
			amount:  1000,
			wantErr: nil,
		},
		{
			name:    "debit one past limit",
			balance: -1000,
			limit:   1000,
			amount:  1,
			wantErr: ErrLimitExceeded,
		},
		{
			name:    "debit with positive balance cushion",
			balance: 500,
			limit:   0,
			amount:  500,
			wantErr: nil,
		},
		{
			name:    "zero limit rejects overdraft",
			balance: 0,
			limit:   0,
			amount:  1,
			wantErr: ErrLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{ID: 1, Balance: tt.balance, Limit: tt.limit}

			err := c.ValidateDebit(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDebit(%d) = %v, want %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestClientApplyDebitAndCredit(t *testing.T) {
	c := &Client{ID: 1, Balance: -1000, Limit: 1000}

	if got := c.ApplyCredit(500); got != -500 {
		t.Errorf("ApplyCredit(500) = %d, want -500", got)
	}

	if got := c.ApplyDebit(250); got != -1250 {
		t.Errorf("ApplyDebit(250) = %d, want -1250", got)
	}

	// Apply helpers must not mutate the client.
	if c.Balance != -1000 {
		t.Errorf("balance mutated to %d, want -1000", c.Balance)
	}
}

func TestTransactionKindDelta(t *testing.T) {
	if got := KindCredit.Delta(100); got != 100 {
		t.Errorf("credit delta = %d, want 100", got)
	}

	if got := KindDebit.Delta(100); got != -100 {
		t.Errorf("debit delta = %d, want -100", got)
	}
}
