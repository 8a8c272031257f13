package handler

import (
	"context"
	"net/http"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	Statement(ctx context.Context, clientID int64) (*domain.Statement, error)
}

// StatementHandler handles statement-related HTTP requests.
type StatementHandler struct {
	statementUC StatementService
	metrics     *metrics.Metrics
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService, m *metrics.Metrics) *StatementHandler {
	return &StatementHandler{
		statementUC: statementUC,
		metrics:     m,
	}
}

// Get returns the client's current balance and last transactions.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID, ok := parseClientID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "client not found", "")
		return
	}

	statement, err := h.statementUC.Statement(r.Context(), clientID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read statement", err.Error())
		return
	}

	h.metrics.StatementsServed.Inc()

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}
