package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	Apply(ctx context.Context, input usecase.ApplyTransactionInput) (*usecase.ApplyTransactionResult, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
	metrics       *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		metrics:       m,
	}
}

// Create applies a credit or debit transaction against a client balance.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID, ok := parseClientID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "client not found", "")
		return
	}

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Malformed bodies (including fractional amounts) are validation
		// failures, not server errors.
		h.metrics.TransactionsRejected.WithLabelValues(metrics.ReasonValidation).Inc()
		writeError(w, http.StatusUnprocessableEntity, "invalid request body", err.Error())

		return
	}

	start := time.Now()

	result, err := h.transactionUC.Apply(r.Context(), req.ToUseCaseInput(clientID))
	if err != nil {
		h.metrics.TransactionsRejected.WithLabelValues(rejectionReason(err)).Inc()
		writeError(w, mapDomainError(err), "transaction rejected", err.Error())

		return
	}

	h.metrics.TransactionsCommitted.WithLabelValues(req.Kind).Inc()
	h.metrics.TransactionDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, dto.TransactionFromResult(result))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return metrics.ReasonNotFound
	case errors.Is(err, domain.ErrLimitExceeded):
		return metrics.ReasonLimit
	case errors.Is(err, domain.ErrTransient):
		return metrics.ReasonTransient
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidDescription):
		return metrics.ReasonValidation
	default:
		return metrics.ReasonInternal
	}
}
