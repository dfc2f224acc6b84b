package account

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/database/entities"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// Repository handles account persistence on postgres. Balance mutations
// for one identity serialize on a row lock, so concurrent adjustments
// can never act on the same stored balance.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

var _ domain.Repository = (*Repository)(nil)

func (r *Repository) Get(ctx context.Context, id string) (*domain.Account, error) {
	var entity entities.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get account",
			err,
			"0b3d5f7a-9c1e-4b3d-8f5a-7c9e1b3d5f7a",
		)
	}
	acc := mapEntity(entity)
	return &acc, nil
}

func (r *Repository) Create(ctx context.Context, acc *domain.Account) error {
	entity := entities.Account{
		ID:      acc.ID,
		Email:   acc.Email,
		Credits: acc.Credits,
	}
	err := r.db.WithContext(ctx).Create(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"account already exists",
				err,
				"2d5f7a9c-1e3b-4d5f-a7c9-e1b3d5f7a9c1",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create account",
			err,
			"4f7a9c1e-3b5d-4f7a-9c1e-3b5d7f9a1c3e",
		)
	}
	acc.CreatedAt = entity.CreatedAt
	return nil
}

func (r *Repository) UpdateEmail(ctx context.Context, id, email string) error {
	result := r.db.WithContext(ctx).Model(&entities.Account{}).Where("id = ?", id).Update("email", email)
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update account email",
			result.Error,
			"6a9c1e3b-5d7f-4a9c-1e3b-5d7f9a1c3e5b",
		)
	}
	return nil
}

// AdjustBalance applies delta inside a transaction that row-locks the
// account, clamping the result at 0. The clamp is a backstop: callers
// enforce affordability before spending.
func (r *Repository) AdjustBalance(ctx context.Context, id string, delta float64) (*domain.Account, error) {
	var entity entities.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&entity).Error; err != nil {
			return err
		}

		balance := entity.Credits + delta
		if balance < 0 {
			balance = 0
		}
		entity.Credits = balance

		return tx.Model(&entities.Account{}).Where("id = ?", id).Update("credits", balance).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"account not found",
				err,
				"8c1e3b5d-7f9a-4c1e-3b5d-7f9a1c3e5b7d",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to adjust account balance",
			err,
			"ae3b5d7f-9a1c-4e3b-5d7f-9a1c3e5b7d9f",
		)
	}
	acc := mapEntity(entity)
	return &acc, nil
}

func mapEntity(entity entities.Account) domain.Account {
	return domain.Account{
		ID:        entity.ID,
		Email:     entity.Email,
		Credits:   entity.Credits,
		CreatedAt: entity.CreatedAt,
	}
}
