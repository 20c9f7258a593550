package database

import (
	"fmt"
	"time"

	"aircraft-manufacturing-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	Driver          string // "postgres" (default) or "sqlite"
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens the database connection and creates the schema from GORM
// models. The dsn is a postgres URL for the postgres driver or a file path
// (or ":memory:") for sqlite.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.Driver == "" {
		opts.Driver = "postgres"
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	// Open DB
	var dialector gorm.Dialector
	switch opts.Driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
		// Translate driver-specific errors (e.g. unique violations) into
		// gorm.ErrDuplicatedKey so callers behave the same on both drivers.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if opts.Driver == "sqlite" {
		// sqlite needs foreign_keys pragma for FK constraint enforcement
		_ = db.Exec(`PRAGMA foreign_keys = ON`).Error
	}

	// AutoMigrate all models (no cycles)
	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// Migrate creates or updates the schema for all models. Order matters only
// for readability; GORM resolves FK dependencies itself.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TeamType{},
		&models.Team{},
		&models.User{},
		&models.TeamMember{},
		&models.PartType{},
		&models.AircraftType{},
		&models.TeamPartPermission{},
		&models.AircraftPartRequirement{},
		&models.Part{},
		&models.Aircraft{},
		&models.AircraftPart{},
	)
}
