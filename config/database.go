package config

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNoDSN = errors.New("DATABASE_URL is required for this driver")

// InitDB opens the configured database and migrates it.
func InitDB(cfg DBConfig) (*database.Store, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	return initStore(db, cfg.Driver)
}

// initStore pings and migrates an opened handle. The pool is closed when
// either step fails.
func initStore(db *gorm.DB, driver string) (*database.Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	store := database.NewStore(db)
	if err := store.Migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	utils.InfoLogger.Printf("Connected to %s database", driver)
	return store, nil
}

// OpenStore is InitDB that never fails: errors yield an unavailable store
// so the HTTP surface can still answer with a server error.
func OpenStore(cfg DBConfig) *database.Store {
	store, err := InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Printf("Database unavailable: %v", err)
		return database.Unavailable(err)
	}
	return store
}

func dialectorFor(cfg DBConfig) (gorm.Dialector, error) {
	dsn := cfg.DSN()
	switch cfg.Driver {
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		if dsn == "" {
			return nil, ErrNoDSN
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}
