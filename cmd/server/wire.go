//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Friteabc/ArtMinds-2/internal/config"
	"github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/database"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/huggingface"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/imgbb"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/logger"
	accountrepo "github.com/Friteabc/ArtMinds-2/internal/infrastructure/repository/account"
	generationrepo "github.com/Friteabc/ArtMinds-2/internal/infrastructure/repository/generation"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/handlers"
)

var generationSet = wire.NewSet(
	provideAccountRepository,
	provideRecordRepository,
	account.NewService,
	huggingface.NewClient,
	wire.Bind(new(generation.Generator), new(*huggingface.Client)),
	imgbb.NewClient,
	wire.Bind(new(generation.Host), new(*imgbb.Client)),
	generation.NewService,
)

// BuildApplication assembles the service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newGormDB,
		generationSet,
		handlers.NewProvider,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newGormDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

// provideAccountRepository mirrors the runtime backend selection so a
// wire-built binary honors ACCOUNT_STORE_BACKEND too.
func provideAccountRepository(cfg *config.Config, db *gorm.DB) account.Repository {
	if cfg.IsMemoryStore() {
		return accountrepo.NewMemoryRepository()
	}
	return accountrepo.NewRepository(db)
}

func provideRecordRepository(cfg *config.Config, db *gorm.DB) generation.RecordRepository {
	if cfg.IsMemoryStore() {
		return generationrepo.NewMemoryRepository()
	}
	return generationrepo.NewRepository(db)
}
