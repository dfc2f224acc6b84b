package account

import (
	"context"
	"sync"
	"time"

	domain "github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// MemoryRepository is a thread-safe in-memory account store, used when no
// database is configured (development, tests). All mutations share one
// write lock, which trivially serializes balance adjustments per
// identity.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]domain.Account)}
}

var _ domain.Repository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Get(_ context.Context, id string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	acc, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

func (m *MemoryRepository) Create(ctx context.Context, acc *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[acc.ID]; ok {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeConflict,
			"account already exists",
			nil,
			"1c3e5b7d-9f0a-4c3e-5b7d-9f0a2c4e6b8d",
		)
	}

	acc.CreatedAt = time.Now().UTC()
	m.accounts[acc.ID] = *acc
	return nil
}

func (m *MemoryRepository) UpdateEmail(ctx context.Context, id, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[id]
	if !ok {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"account not found",
			nil,
			"3e5b7d9f-0a2c-4e5b-7d9f-0a2c4e6b8d0f",
		)
	}
	acc.Email = email
	m.accounts[id] = acc
	return nil
}

func (m *MemoryRepository) AdjustBalance(ctx context.Context, id string, delta float64) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[id]
	if !ok {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"account not found",
			nil,
			"5b7d9f0a-2c4e-4b7d-9f0a-2c4e6b8d0f2a",
		)
	}

	balance := acc.Credits + delta
	if balance < 0 {
		balance = 0
	}
	acc.Credits = balance
	m.accounts[id] = acc
	return &acc, nil
}
