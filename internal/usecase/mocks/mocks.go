package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	clients map[int64]*domain.Client

	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Client, error)
	GetByIDTxFunc        func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Client, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Client, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id int64, balance int64) error
	ListAllFunc          func(ctx context.Context) ([]*domain.Client, error)
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{
		clients: make(map[int64]*domain.Client),
	}
}

// Seed adds a client to the in-memory store.
func (m *MockClientRepository) Seed(c *domain.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[c.ID] = c
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrClientNotFound
}

func (m *MockClientRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Client, error) {
	if m.GetByIDTxFunc != nil {
		return m.GetByIDTxFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockClientRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Client, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockClientRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance int64) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.clients[id]; ok {
		c.Balance = balance
	}
	return nil
}

func (m *MockClientRepository) ListAll(ctx context.Context) ([]*domain.Client, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	clients := make([]*domain.Client, 0, len(m.clients))
	for _, c := range m.clients {
		cp := *c
		clients = append(clients, &cp)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.TransactionEntry
	nextID  int64

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, entry *domain.TransactionEntry) error
	ListRecentFunc func(ctx context.Context, tx usecase.Transaction, clientID int64, limit int) ([]*domain.TransactionEntry, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.TransactionEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	entry.ID = m.nextID
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockEntryRepository) ListRecent(ctx context.Context, tx usecase.Transaction, clientID int64, limit int) ([]*domain.TransactionEntry, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, tx, clientID, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.TransactionEntry
	for i := len(m.entries) - 1; i >= 0 && len(entries) < limit; i-- {
		if m.entries[i].ClientID == clientID {
			entries = append(entries, m.entries[i])
		}
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (m *MockEntryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc         func(ctx context.Context) (usecase.Transaction, error)
	BeginSnapshotFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

func (m *MockTransactionManager) BeginSnapshot(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginSnapshotFunc != nil {
		return m.BeginSnapshotFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockRetrier is a pass-through Retrier that runs the operation once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockResolver is a mock implementation of ClientResolver.
type MockResolver struct {
	Limits map[int64]int64
}

func NewMockResolver(limits map[int64]int64) *MockResolver {
	return &MockResolver{Limits: limits}
}

func (m *MockResolver) Resolve(id int64) (int64, error) {
	limit, ok := m.Limits[id]
	if !ok {
		return 0, domain.ErrClientNotFound
	}
	return limit, nil
}
