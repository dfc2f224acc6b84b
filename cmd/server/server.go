package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Friteabc/ArtMinds-2/internal/config"
	"github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/database"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/huggingface"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/imgbb"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/logger"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/observability"
	accountrepo "github.com/Friteabc/ArtMinds-2/internal/infrastructure/repository/account"
	generationrepo "github.com/Friteabc/ArtMinds-2/internal/infrastructure/repository/generation"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/handlers"
)

// @title ArtMinds API
// @version 1.0
// @description Text-to-image generation and credit accounting service
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	accountRepository, recordRepository, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize account store")
	}

	generator := huggingface.NewClient(cfg, log)
	host := imgbb.NewClient(cfg, log)

	accountService := account.NewService(accountRepository, log)
	generationService := generation.NewService(accountService, generator, host, recordRepository, log)

	provider := handlers.NewProvider(accountService, generationService, log)
	httpServer := httpserver.New(cfg, log, provider)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// buildRepositories selects the account store backend. The in-memory
// backend exists for local development and tests; postgres is the
// production default.
func buildRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (account.Repository, generation.RecordRepository, error) {
	if cfg.IsMemoryStore() {
		log.Warn().Msg("using in-memory account store, state is lost on restart")
		return accountrepo.NewMemoryRepository(), generationrepo.NewMemoryRepository(), nil
	}

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, nil, err
	}

	return accountrepo.NewRepository(db), generationrepo.NewRepository(db), nil
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
