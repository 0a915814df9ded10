package sqlstore

import (
	"context"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ storage.Store = (*SQLStore)(nil)

func init() {
	storage.Register(storage.DriverSQLite, func(_ context.Context, cfg storage.Config) (storage.Store, error) {
		return Open(cfg)
	})
}

// Open creates the database file and its folder if needed and returns a store
// over it. The connection is closed again when the store cannot be built.
func Open(cfg storage.Config) (*SQLStore, error) {
	if cfg.SQLite == nil || cfg.SQLite.Path == "" {
		return nil, errors.New("[SQLStore.Open] sqlite path required")
	}
	if dir := filepath.Dir(cfg.SQLite.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "[SQLStore.Open] create storage folder")
		}
	}
	db, err := gorm.Open(sqlite.Open(cfg.SQLite.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "[SQLStore.Open] open sqlite")
	}
	store, err := New(db, cfg.Prefix)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return store, nil
}

// Entry is one persisted key-value pair.
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "storage_entries"
}

// SQLStore persists credentials across runs of the terminal client.
type SQLStore struct {
	db     *gorm.DB
	prefix string
}

// New migrates the entries table on db and returns a store over it.
func New(db *gorm.DB, prefix string) (*SQLStore, error) {
	if db == nil {
		return nil, errors.New("[SQLStore.New] database handle required")
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, errors.Wrap(err, "[SQLStore.New] auto migrate")
	}
	return &SQLStore{db: db, prefix: prefix}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", s.prefix+key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", storage.ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "[SQLStore.Get] %s", key)
	}
	return entry.Value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: s.prefix + key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	return errors.Wrapf(err, "[SQLStore.Set] %s", key)
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("entry_key = ?", s.prefix+key).Delete(&Entry{}).Error
	return errors.Wrapf(err, "[SQLStore.Remove] %s", key)
}

// Clear deletes the entries whose key starts with the prefix, matched exactly.
func (s *SQLStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Where("substr(entry_key, 1, ?) = ?", utf8.RuneCountInString(s.prefix), s.prefix).
		Delete(&Entry{}).Error
	return errors.Wrap(err, "[SQLStore.Clear]")
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "[SQLStore.Close]")
	}
	return sqlDB.Close()
}
