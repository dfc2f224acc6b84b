package generation

import (
	"context"
	"sync"
	"time"

	domain "github.com/Friteabc/ArtMinds-2/internal/domain/generation"
)

// MemoryRepository keeps generation history in memory, newest first.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]domain.Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string][]domain.Record)}
}

var _ domain.RecordRepository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Create(_ context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.CreatedAt = time.Now().UTC()
	m.records[rec.AccountID] = append([]domain.Record{*rec}, m.records[rec.AccountID]...)
	return nil
}

func (m *MemoryRepository) ListByAccount(_ context.Context, accountID string) ([]*domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := m.records[accountID]
	records := make([]*domain.Record, 0, len(rows))
	for i := range rows {
		rec := rows[i]
		records = append(records, &rec)
	}
	return records, nil
}
