package responses

import (
	"time"

	"github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
)

// UserResponse represents an account record
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Credits   float64   `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}

// BuildUserResponse creates a response from the domain account
func BuildUserResponse(acc *account.Account) *UserResponse {
	return &UserResponse{
		ID:        acc.ID,
		Email:     acc.Email,
		Credits:   acc.Credits,
		CreatedAt: acc.CreatedAt,
	}
}

// GenerateResponse represents a fully successful generation
type GenerateResponse struct {
	ImageURL         string  `json:"imageUrl"`
	DisplayURL       string  `json:"displayUrl,omitempty"`
	DeleteURL        string  `json:"deleteUrl,omitempty"`
	Seed             int64   `json:"seed"`
	RemainingCredits float64 `json:"remainingCredits"`
}

// BuildGenerateResponse creates a response from the domain result
func BuildGenerateResponse(result *generation.Result) *GenerateResponse {
	return &GenerateResponse{
		ImageURL:         result.ImageURL,
		DisplayURL:       result.DisplayURL,
		DeleteURL:        result.DeleteURL,
		Seed:             result.Seed,
		RemainingCredits: result.RemainingCredits,
	}
}

// HistoryResponse lists past generations for an account
type HistoryResponse struct {
	Data []*generation.Record `json:"data"`
}

// BuildHistoryResponse creates a response from domain records
func BuildHistoryResponse(records []*generation.Record) *HistoryResponse {
	if records == nil {
		records = []*generation.Record{}
	}
	return &HistoryResponse{Data: records}
}
