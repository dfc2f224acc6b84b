package account

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// Repository defines persistence operations needed by the service.
// Implementations must serialize balance mutations per identity: two
// concurrent AdjustBalance calls for the same account may never both
// read the same stored balance.
type Repository interface {
	Get(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, acc *Account) error
	UpdateEmail(ctx context.Context, id, email string) error
	// AdjustBalance applies delta to the stored balance, clamping the
	// result at 0, and returns the updated record.
	AdjustBalance(ctx context.Context, id string, delta float64) (*Account, error)
}

// Service owns account lifecycle and credit accounting.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "account-service").Logger(),
	}
}

// Register creates the account on first sign-in and is a no-op for the
// balance on every later call: an existing record is returned unchanged
// except for an email re-sync. Recreating with fresh starting credits
// would let users reset their balance by signing in again.
func (s *Service) Register(ctx context.Context, id, email string) (*Account, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if email != "" && email != existing.Email {
			if err := s.repo.UpdateEmail(ctx, id, email); err != nil {
				return nil, err
			}
			existing.Email = email
		}
		return existing, nil
	}

	acc := &Account{
		ID:      id,
		Email:   email,
		Credits: StartingCredits,
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		// Lost the race against a concurrent first sign-in; the record
		// that won carries the starting balance already.
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
			return s.mustGet(ctx, id)
		}
		return nil, err
	}

	s.log.Info().Str("account_id", id).Float64("credits", acc.Credits).Msg("account created")
	return acc, nil
}

// Get returns the account or a NOT_FOUND error.
func (s *Service) Get(ctx context.Context, id string) (*Account, error) {
	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			"account not found",
			nil,
			"c1f6a3b2-9d4e-4f7a-8b2c-5e6d7f8a9b0c",
		)
	}
	return acc, nil
}

// AdjustBalance applies delta (may be negative) to the account's balance.
func (s *Service) AdjustBalance(ctx context.Context, id string, delta float64) (*Account, error) {
	acc, err := s.repo.AdjustBalance(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Service) mustGet(ctx context.Context, id string) (*Account, error) {
	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal,
			"account vanished after create conflict",
			nil,
			"4d2b8c1e-7f3a-4b9d-a0e5-6c7d8e9f0a1b",
		)
	}
	return acc, nil
}
