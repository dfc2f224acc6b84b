package handlers

import (
	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
)

// Provider wires HTTP handlers.
type Provider struct {
	Users    *UserHandler
	Generate *GenerateHandler
}

func NewProvider(accounts *account.Service, generations *generation.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Users:    NewUserHandler(accounts, generations, log),
		Generate: NewGenerateHandler(generations, log),
	}
}
