package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sqlpractice/internal/logging"
)

// driverName is registered by github.com/glebarez/go-sqlite, which the gorm
// dialector imports.
const driverName = "sqlite"

const busyTimeoutMs = 5000

func dsn(path string, readOnly bool) string {
	s := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", path, busyTimeoutMs)
	if readOnly {
		s += "&_pragma=query_only(1)"
	}
	return s
}

// Open connects gorm to the SQLite file at path, creating the file if needed.
// Writes go through a single connection.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path, false)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// OpenReadOnly opens a pool on path whose connections refuse writes. It is
// used to run user queries.
func OpenReadOnly(path string, maxConns int) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn(path, true))
	if err != nil {
		return nil, fmt.Errorf("failed to open read-only database %s: %w", path, err)
	}
	if maxConns <= 0 {
		maxConns = 4
	}
	db.SetMaxOpenConns(maxConns)
	db.SetConnMaxIdleTime(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping read-only database: %w", err)
	}
	return db, nil
}

// EnsureDatabaseExists opens the practice database at path. When the file
// does not exist yet it is created and seeded; an existing file is reused
// as is. The returned bool reports whether the file was created.
func EnsureDatabaseExists(ctx context.Context, path string) (*gorm.DB, bool, error) {
	log := logging.WithComponent("database")

	_, err := os.Stat(path)
	switch {
	case err == nil:
		log.Info("using existing practice database", "path", path)
		db, err := Open(path)
		return db, false, err
	case !errors.Is(err, fs.ErrNotExist):
		return nil, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	log.Info("practice database not found, creating it", "path", path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := Open(path)
	if err != nil {
		return nil, false, err
	}

	if err := Reset(ctx, db); err != nil {
		// A half-built file would be picked up as "existing" on the next run.
		Close(db)
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Error("failed to remove partially created database", "path", path, "error", rmErr)
		}
		return nil, false, err
	}

	log.Info("practice database created", "path", path)
	return db, true, nil
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logging.WithComponent("database").Error("failed to close database", "error", err)
		return
	}
	logging.WithComponent("database").Info("database connection closed")
}
