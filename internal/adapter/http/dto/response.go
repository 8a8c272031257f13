package dto

import (
	"time"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// TransactionResponse is the post-commit balance and limit.
type TransactionResponse struct {
	Limit   int64 `json:"limit"`
	Balance int64 `json:"balance"`
}

// TransactionFromResult converts a use case result to a response.
func TransactionFromResult(r *usecase.ApplyTransactionResult) *TransactionResponse {
	return &TransactionResponse{
		Limit:   r.Limit,
		Balance: r.Balance,
	}
}

// BalanceSummary is the balance section of a statement response.
type BalanceSummary struct {
	Total int64     `json:"total"`
	Limit int64     `json:"limit"`
	AsOf  time.Time `json:"asOf"`
}

// StatementEntry is one transaction in a statement response.
type StatementEntry struct {
	Amount      int64     `json:"amount"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// StatementResponse is the statement view: current balance plus the most
// recent transactions, newest first.
type StatementResponse struct {
	Balance          BalanceSummary   `json:"balance"`
	LastTransactions []StatementEntry `json:"lastTransactions"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement) *StatementResponse {
	// Empty history serializes as [], not null.
	entries := make([]StatementEntry, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, StatementEntry{
			Amount:      e.Amount,
			Kind:        string(e.Kind),
			Description: e.Description,
			OccurredAt:  e.OccurredAt,
		})
	}

	return &StatementResponse{
		Balance: BalanceSummary{
			Total: s.Balance,
			Limit: s.Limit,
			AsOf:  s.AsOf,
		},
		LastTransactions: entries,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
