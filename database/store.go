package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

// ErrStoreUnavailable is returned by every store operation when the
// database handle could not be initialized.
var ErrStoreUnavailable = errors.New("database not initialized")

// Store owns the database handle. A Store built with Unavailable keeps the
// server running and reports ErrStoreUnavailable on every access.
type Store struct {
	db    *gorm.DB
	cause error
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Unavailable returns a Store that failed to initialize because of cause.
func Unavailable(cause error) *Store {
	return &Store{cause: cause}
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Cause is the initialization error of an unavailable store.
func (s *Store) Cause() error {
	if s == nil {
		return nil
	}
	return s.cause
}

// DB returns the handle bound to ctx.
func (s *Store) DB(ctx context.Context) (*gorm.DB, error) {
	if !s.Available() {
		if cause := s.Cause(); cause != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, cause)
		}
		return nil, ErrStoreUnavailable
	}
	return s.db.WithContext(ctx), nil
}

// Migrate creates the menu item and order tables.
func (s *Store) Migrate() error {
	db, err := s.DB(context.Background())
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Order{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// Name is the current database name as reported by the driver.
func (s *Store) Name(ctx context.Context) string {
	db, err := s.DB(ctx)
	if err != nil {
		return ""
	}
	return db.Migrator().CurrentDatabase()
}

// Collections lists the tables in the current database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	db, err := s.DB(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := db.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if !s.Available() {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
