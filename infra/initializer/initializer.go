// Package initializer wires configuration, logging, the database and the
// unit of work into the dependency set the application runs on.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/sebsst/Banking-app/infra"
	infrarepo "github.com/sebsst/Banking-app/infra/repository"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/metrics"
	"github.com/sebsst/Banking-app/pkg/repository"
	"gorm.io/gorm"
)

// Deps is the explicitly constructed dependency set handed down to the
// application. There is no module-level singleton; everything flows from
// here.
type Deps struct {
	DB      *gorm.DB
	Uow     repository.UnitOfWork
	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// InitializeDependencies builds the logger, opens the database, migrates the
// schema and constructs the unit of work.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(infrarepo.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	logger.Info("Database schema migrated")

	return &Deps{
		DB:      db,
		Uow:     infrarepo.NewUoW(db),
		Logger:  logger,
		Metrics: metrics.NewCollector(logger),
	}, nil
}
