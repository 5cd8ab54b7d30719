package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the self-hosted Postgres that stands in for the hosted
// tables (REMOTE_BACKEND=postgres) and makes sure the three catalogue
// tables exist.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}
	return db, nil
}

// applySchemaPatches mirrors the hosted schema. Every statement is
// idempotent so it runs on each start.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`CREATE TABLE IF NOT EXISTS members (
		    id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		    name       TEXT        NOT NULL,
		    is_active  BOOLEAN     NOT NULL DEFAULT TRUE,
		    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_members_name_lower ON members (lower(name))`,
		`CREATE TABLE IF NOT EXISTS categories (
		    id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		    name       TEXT        NOT NULL UNIQUE,
		    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS comisionados (
		    id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		    nombre     TEXT        NOT NULL,
		    cargo      TEXT        NOT NULL DEFAULT '',
		    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

// RunMigrations applies the schema patches; used by the integration tests.
func RunMigrations(db *gorm.DB) error {
	return applySchemaPatches(db)
}
