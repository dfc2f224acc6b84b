package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// ValidateRequest normalizes a raw payload into a canonical Request or
// fails on the first offending field. Purely structural: no store or
// network access happens here. Rules run in a fixed order so the error a
// caller sees is deterministic.
func ValidateRequest(ctx context.Context, raw RawRequest) (*Request, error) {
	prompt := strings.TrimSpace(raw.Prompt)
	if prompt == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"prompt is required",
			nil,
			"8e1d5c3a-2b4f-4d6e-9a8b-7c0d1e2f3a4b",
		)
	}

	style := strings.TrimSpace(raw.Style)
	if _, ok := StyleFragment(style); !ok {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unknown style %q", raw.Style),
			nil,
			"3b9f7e2d-6a1c-4e8b-b5d4-0f2a3c4d5e6f",
		)
	}

	ratio := AspectRatioSquare
	if trimmed := strings.TrimSpace(raw.AspectRatio); trimmed != "" {
		ratio = AspectRatio(trimmed)
		if _, ok := aspectRatioDimensions[ratio]; !ok {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation,
				fmt.Sprintf("invalid aspect ratio %q", raw.AspectRatio),
				nil,
				"5c0a8d4b-1e7f-4a2c-8b9e-6d3f4a5b6c7d",
			)
		}
	}

	negative := raw.NegativePrompt
	if strings.TrimSpace(negative) == "" {
		negative = DefaultNegativePrompt
	}

	userID := strings.TrimSpace(raw.UserID)
	if userID == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized,
			"missing requester identity",
			nil,
			"a7d2e9f1-3c5b-4f8a-9d0e-2b4c6a8e0f1d",
		)
	}

	return &Request{
		Prompt:         prompt,
		NegativePrompt: negative,
		Style:          style,
		AspectRatio:    ratio,
		Seed:           raw.Seed,
		AccountID:      userID,
	}, nil
}
