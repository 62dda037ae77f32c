// Package infra provides the database connection and persistence
// implementations backing the repository contracts.
package infra

import (
	"errors"
	"time"

	"github.com/sebsst/Banking-app/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a pooled Postgres connection. appEnv controls the
// GORM log verbosity.
func NewDBConnection(cfg *config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}
