package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
	"github.com/iho/minibank/internal/usecase/mocks"
)

func TestRegistryUseCase_LoadAndResolve(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	clientRepo.Seed(&domain.Client{ID: 1, Limit: 100000})
	clientRepo.Seed(&domain.Client{ID: 2, Limit: 80000})
	clientRepo.Seed(&domain.Client{ID: 3, Limit: 0})

	registry := usecase.NewRegistryUseCase(clientRepo)
	if err := registry.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("expected 3 clients, got %d", registry.Count())
	}

	limit, err := registry.Resolve(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 80000 {
		t.Errorf("expected limit 80000, got %d", limit)
	}

	// Zero limit is a valid provisioned limit, not a miss.
	limit, err = registry.Resolve(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 0 {
		t.Errorf("expected limit 0, got %d", limit)
	}
}

func TestRegistryUseCase_ResolveUnknownClient(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	clientRepo.Seed(&domain.Client{ID: 1, Limit: 100000})

	registry := usecase.NewRegistryUseCase(clientRepo)
	if err := registry.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := registry.Resolve(999)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

func TestRegistryUseCase_LoadError(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	clientRepo.ListAllFunc = func(ctx context.Context) ([]*domain.Client, error) {
		return nil, errors.New("connection refused")
	}

	registry := usecase.NewRegistryUseCase(clientRepo)
	if err := registry.Load(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
