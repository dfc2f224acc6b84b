package requests

import (
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
)

// RegisterUserRequest upserts an account by external identity.
type RegisterUserRequest struct {
	ID    string `json:"id" binding:"required"`
	Email string `json:"email"`
}

// GenerateRequest is the raw generation payload; the domain validator
// owns all field rules, so nothing is marked binding-required here.
type GenerateRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt"`
	Style          string `json:"style"`
	AspectRatio    string `json:"aspectRatio"`
	Seed           *int64 `json:"seed"`
	UserID         string `json:"userId"`
}

// ToDomain converts the request to the domain payload
func (r *GenerateRequest) ToDomain() generation.RawRequest {
	return generation.RawRequest{
		Prompt:         r.Prompt,
		NegativePrompt: r.NegativePrompt,
		Style:          r.Style,
		AspectRatio:    r.AspectRatio,
		Seed:           r.Seed,
		UserID:         r.UserID,
	}
}
