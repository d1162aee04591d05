// Package db opens the relational store used for user records.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ghanalingo/internal/feature/auth/domain/entity"
	"ghanalingo/internal/platform/config"
)

const (
	connectDeadline = 60 * time.Second
	connectBackoff  = 3 * time.Second
)

// BuildDSN assembles a Postgres DSN from the connection settings.
func BuildDSN(cfg config.DB) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// Open connects to Postgres, retrying for up to a minute so the process
// survives a database that comes up slightly later than it does. When
// migrate is set the users schema is auto-migrated.
func Open(cfg config.DB, migrate bool) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)

	var (
		gormDB *gorm.DB
		err    error
	)
	deadline := time.Now().Add(connectDeadline)
	for {
		gormDB, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", connectDeadline, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(connectBackoff)
	}

	if migrate {
		if err := gormDB.AutoMigrate(&entity.User{}); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return gormDB, nil
}
