package generation

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/database/entities"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// Repository persists generation history records on postgres.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

var _ domain.RecordRepository = (*Repository)(nil)

func (r *Repository) Create(ctx context.Context, rec *domain.Record) error {
	entity := entities.GenerationRecord{
		ID:             rec.ID,
		AccountID:      rec.AccountID,
		Prompt:         rec.Prompt,
		NegativePrompt: rec.NegativePrompt,
		Style:          rec.Style,
		Seed:           rec.Seed,
		ImageURL:       rec.ImageURL,
		Width:          rec.Width,
		Height:         rec.Height,
	}
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create generation record",
			err,
			"7d9f0a2c-4e6b-4d9f-0a2c-4e6b8d0f2a4c",
		)
	}
	rec.CreatedAt = entity.CreatedAt
	return nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Record, error) {
	var rows []entities.GenerationRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list generation records",
			err,
			"9f0a2c4e-6b8d-4f0a-2c4e-6b8d0f2a4c6e",
		)
	}

	records := make([]*domain.Record, 0, len(rows))
	for _, row := range rows {
		rec := mapEntity(row)
		records = append(records, &rec)
	}
	return records, nil
}

func mapEntity(entity entities.GenerationRecord) domain.Record {
	return domain.Record{
		ID:             entity.ID,
		AccountID:      entity.AccountID,
		Prompt:         entity.Prompt,
		NegativePrompt: entity.NegativePrompt,
		Style:          entity.Style,
		Seed:           entity.Seed,
		ImageURL:       entity.ImageURL,
		Width:          entity.Width,
		Height:         entity.Height,
		CreatedAt:      entity.CreatedAt,
	}
}
