package dto

import (
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// TransactionRequest represents a request to apply a transaction.
type TransactionRequest struct {
	Amount      int64  `json:"amount"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// ToUseCaseInput converts to use case input for the given client.
func (r *TransactionRequest) ToUseCaseInput(clientID int64) usecase.ApplyTransactionInput {
	return usecase.ApplyTransactionInput{
		ClientID:    clientID,
		Amount:      r.Amount,
		Kind:        domain.TransactionKind(r.Kind),
		Description: r.Description,
	}
}
