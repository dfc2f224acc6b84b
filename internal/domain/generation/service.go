package generation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
	"github.com/Friteabc/ArtMinds-2/utils/imageid"
)

// Generator produces raw image bytes for a composed prompt. Treated as
// opaque and unreliable; implementations must bound their own timeouts.
type Generator interface {
	Generate(ctx context.Context, prompt ComposedPrompt) ([]byte, error)
}

// Host uploads image bytes to durable public hosting.
type Host interface {
	Upload(ctx context.Context, data []byte) (*HostedImage, error)
}

// RecordRepository persists generation history.
type RecordRepository interface {
	Create(ctx context.Context, rec *Record) error
	ListByAccount(ctx context.Context, accountID string) ([]*Record, error)
}

// Service is the generation orchestrator: a strict forward pipeline with
// no internal retries. Credits are deducted only after both provider
// calls succeeded; a failure anywhere earlier leaves the balance
// untouched.
type Service struct {
	accounts  *account.Service
	composer  *Composer
	generator Generator
	host      Host
	records   RecordRepository
	guard     *creditGuard
	log       zerolog.Logger
}

func NewService(accounts *account.Service, generator Generator, host Host, records RecordRepository, log zerolog.Logger) *Service {
	return &Service{
		accounts:  accounts,
		composer:  NewComposer(),
		generator: generator,
		host:      host,
		records:   records,
		guard:     newCreditGuard(),
		log:       log.With().Str("component", "generation-service").Logger(),
	}
}

// Generate validates the raw request, enforces the credit balance, calls
// the generation and hosting providers in order, and deducts the cost
// only once a usable artifact exists.
func (s *Service) Generate(ctx context.Context, raw RawRequest) (*Result, error) {
	req, err := ValidateRequest(ctx, raw)
	if err != nil {
		return nil, err
	}

	// The reservation is the primary consistency guarantee: the balance
	// is read inside the account's critical section, so concurrent
	// requests from one account cannot all pass this check against the
	// same stored balance, and a stale snapshot cannot admit a request
	// the balance no longer affords. No provider call has happened yet,
	// so a rejection here costs nothing.
	credits, admitted, err := s.guard.reserve(req.AccountID, Cost, func() (float64, error) {
		acc, err := s.accounts.Get(ctx, req.AccountID)
		if err != nil {
			return 0, err
		}
		return acc.Credits, nil
	})
	if err != nil {
		return nil, err
	}
	if !admitted {
		return nil, platformerrors.NewErrorWithContext(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeInsufficientCredits,
			"insufficient credits for generation",
			nil,
			"f4b8a2c6-0d3e-4f1a-9b7c-5e8d2a6f0b3c",
			map[string]any{"credits": credits, "cost": Cost},
		)
	}
	reserved := true
	defer func() {
		if reserved {
			s.guard.release(req.AccountID, Cost)
		}
	}()

	composed := s.composer.Compose(req)

	data, err := s.generator.Generate(ctx, composed)
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeGenerationProvider,
			"image generation provider failed",
			err,
			"2a6c4e8b-1d3f-4a5c-8e9b-0f2d4a6c8e0b",
		)
	}

	// Hosting failures are not charged either: the user only pays for a
	// usable public artifact, even though provider compute was already
	// spent. Accepted risk, not a bug.
	hosted, err := s.host.Upload(ctx, data)
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeHostingProvider,
			"image hosting provider failed",
			err,
			"6e0b2d4f-3a5c-4e7b-9c1d-8f0a2c4e6b8d",
		)
	}

	// The deduction and the reservation hand-off happen in one critical
	// section, so no competitor's balance read can land between them.
	var updated *account.Account
	err = s.guard.settle(req.AccountID, Cost, func() error {
		adjusted, adjustErr := s.accounts.AdjustBalance(ctx, req.AccountID, -Cost)
		if adjustErr != nil {
			return adjustErr
		}
		updated = adjusted
		return nil
	})
	reserved = false
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			// The account existed at the pre-check and is never deleted
			// in normal operation; losing it mid-pipeline means
			// invariants are broken somewhere below us.
			inconsistency := platformerrors.NewError(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeInternal,
				"account vanished before credit deduction",
				err,
				"9d1f3b5a-7c0e-4d2f-8a4b-6e8c0a2d4f6a",
			)
			platformerrors.LogError(s.log, inconsistency)
			return nil, inconsistency
		}
		return nil, err
	}

	s.recordHistory(ctx, req, composed, hosted)

	s.log.Info().
		Str("account_id", req.AccountID).
		Str("style", req.Style).
		Int64("seed", composed.Seed).
		Float64("remaining_credits", updated.Credits).
		Msg("generation completed")

	return &Result{
		ImageURL:         hosted.URL,
		DisplayURL:       hosted.DisplayURL,
		DeleteURL:        hosted.DeleteURL,
		Seed:             composed.Seed,
		RemainingCredits: updated.Credits,
	}, nil
}

// History returns the account's past generations, newest first.
func (s *Service) History(ctx context.Context, accountID string) ([]*Record, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}
	return s.records.ListByAccount(ctx, accountID)
}

// recordHistory persists the generation record. The user already holds a
// usable artifact and was charged for it, so a persistence failure here
// is logged rather than surfaced.
func (s *Service) recordHistory(ctx context.Context, req *Request, composed ComposedPrompt, hosted *HostedImage) {
	rec := &Record{
		ID:             imageid.New(),
		AccountID:      req.AccountID,
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Style:          req.Style,
		Seed:           composed.Seed,
		ImageURL:       hosted.URL,
		Width:          composed.Width,
		Height:         composed.Height,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		s.log.Warn().Err(err).Str("account_id", req.AccountID).Msg("failed to persist generation record")
	}
}
