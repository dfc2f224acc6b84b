package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.Account{}, &entities.GenerationRecord{}); err != nil {
		return err
	}
	log.Info().Msg("applied account and generation record migrations")
	return nil
}
