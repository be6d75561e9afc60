// Package db is the self-hosted backend: brews and accounts in a local
// SQLite file through gorm.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	hclog "github.com/hashicorp/go-hclog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/brewlog/internal/logging"
	"github.com/balkashynov/brewlog/internal/models"
)

// Database is an open SQLite backend
type Database struct {
	db  *gorm.DB
	log hclog.Logger
}

// Open sets up the database connection and runs migrations
func Open(dbPath string, log hclog.Logger) (*Database, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create brewlog directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(logging.Std(log.Named("gorm")), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{db: gdb, log: log}

	// Run auto-migrations
	if err := database.runMigrations(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// runMigrations creates/updates the database schema
func (d *Database) runMigrations() error {
	return d.db.AutoMigrate(
		&models.Account{},
		&models.Brew{},
	)
}

// Name identifies the backend in logs and messages
func (d *Database) Name() string {
	return "sqlite"
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
