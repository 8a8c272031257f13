package usecase

import (
	"context"
	"fmt"

	"github.com/iho/minibank/internal/domain"
)

// RegistryUseCase resolves client ids to their fixed overdraft limits from an
// immutable-after-load in-process map. The client set is provisioned
// out-of-band and never changes at runtime, so the map is populated once at
// startup and needs no invalidation. A miss means the client genuinely does
// not exist.
type RegistryUseCase struct {
	clientRepo ClientRepository
	limits     map[int64]int64
}

// NewRegistryUseCase creates a new RegistryUseCase. Load must be called
// before Resolve.
func NewRegistryUseCase(clientRepo ClientRepository) *RegistryUseCase {
	return &RegistryUseCase{
		clientRepo: clientRepo,
		limits:     make(map[int64]int64),
	}
}

// Load populates the registry from the provisioned client set.
func (uc *RegistryUseCase) Load(ctx context.Context) error {
	clients, err := uc.clientRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load client registry: %w", err)
	}

	limits := make(map[int64]int64, len(clients))
	for _, c := range clients {
		limits[c.ID] = c.Limit
	}

	uc.limits = limits

	return nil
}

// Resolve returns the client's fixed limit, or ErrClientNotFound if no
// client with that id is provisioned.
func (uc *RegistryUseCase) Resolve(id int64) (int64, error) {
	limit, ok := uc.limits[id]
	if !ok {
		return 0, domain.ErrClientNotFound
	}

	return limit, nil
}

// Count returns the number of provisioned clients.
func (uc *RegistryUseCase) Count() int {
	return len(uc.limits)
}
