// Package store opens the configured snapshot store and returns its repositories.
package store

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/meufluxo/internal/core/ports/repositories"
	"github.com/SscSPs/meufluxo/internal/platform/config"
	"github.com/SscSPs/meufluxo/internal/repositories/database/mongodb"
	"github.com/SscSPs/meufluxo/internal/repositories/database/pgsql"
	"github.com/SscSPs/meufluxo/pkg/database"
)

// Open connects to the store selected by cfg.StoreDriver. The returned function releases the
// connection and must be called on shutdown.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openPostgres(ctx, cfg, logger)
	case config.StoreMongo:
		return openMongo(ctx, cfg, logger)
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, func(), error) {
	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, database.DefaultMigrationsPath, logger); err != nil {
			return nil, nil, err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, err
	}
	repos := pgsql.NewRepositoryProvider(pool)
	return &repos, func() { database.ClosePgxPool(pool, logger) }, nil
}

func openMongo(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, func(), error) {
	client, err := mongodb.Connect(ctx, cfg.MongoURL, logger)
	if err != nil {
		return nil, nil, err
	}
	repos := mongodb.NewRepositoryProvider(mongodb.NewProvider(client, cfg.MongoDatabase), cfg.Location)
	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting from MongoDB", slog.String("error", err.Error()))
			return
		}
		logger.Info("MongoDB connection closed.")
	}
	return &repos, closeFn, nil
}
