package entities

import "time"

// GenerationRecord represents a persisted successful generation.
type GenerationRecord struct {
	ID             string    `gorm:"type:varchar(40);primaryKey"`
	AccountID      string    `gorm:"type:varchar(128);index;not null"`
	Prompt         string    `gorm:"type:text;not null"`
	NegativePrompt string    `gorm:"type:text"`
	Style          string    `gorm:"type:varchar(32);not null"`
	Seed           int64     `gorm:"not null"`
	ImageURL       string    `gorm:"type:varchar(512);not null"`
	Width          int       `gorm:"not null"`
	Height         int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (GenerationRecord) TableName() string {
	return "generation_records"
}
