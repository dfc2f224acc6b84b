package entities

import "time"

// Account represents the persisted user account and credit balance.
type Account struct {
	ID        string    `gorm:"type:varchar(128);primaryKey"`
	Email     string    `gorm:"type:varchar(255)"`
	Credits   float64   `gorm:"type:decimal(12,4);not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Account) TableName() string {
	return "accounts"
}
