package account

import "time"

// StartingCredits is the balance assigned exactly once, at account creation.
const StartingCredits = 10.0

// Account maps an externally issued identity to a credit balance.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Credits   float64   `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}
