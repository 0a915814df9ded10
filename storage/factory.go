package storage

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/pkg/errors"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
	DriverNone   = "none"
)

// Config describes the backend selection parameters.
type Config struct {
	Driver string
	Prefix string
	Redis  *RedisConfig
	SQLite *SQLiteConfig
}

// RedisConfig captures connection options.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SQLiteConfig points at the database file.
type SQLiteConfig struct {
	Path string
}

// Constructor builds a Store for one driver. Backends register themselves so
// this package does not import redis or gorm.
type Constructor func(ctx context.Context, cfg Config) (Store, error)

var constructors = map[string]Constructor{}

// Register makes a backend available to New. It panics on duplicate names.
func Register(driver string, constructor Constructor) {
	driver = strings.ToLower(driver)
	if _, exists := constructors[driver]; exists {
		panic(fmt.Sprintf("storage driver %q registered twice", driver))
	}
	constructors[driver] = constructor
}

// New builds the configured backend. The "none" driver yields a nil Store,
// which an Accessor treats as storage being unavailable. A backend that fails
// to start is reported as ErrStorageUnavailable; an unknown driver is not.
func New(ctx context.Context, cfg Config) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverMemory
	}
	if driver == DriverNone {
		return nil, nil
	}
	constructor, ok := constructors[driver]
	if !ok {
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
	store, err := constructor(ctx, cfg)
	if err != nil {
		return nil, errors.Wrapf(apperrors.ErrStorageUnavailable, "[storage.New] %s: %v", driver, err)
	}
	return store, nil
}
