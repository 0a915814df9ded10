package sqlstore_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/jrsteele09/hostel-admin/storage/sqlstore"
	"github.com/jrsteele09/hostel-admin/storage/storetest"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestSQLStore(t *testing.T) {
	store, err := sqlstore.New(newTestSQLiteDB(t), "hostel:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	storetest.Run(t, store)
}

func TestSQLStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "hostel.db")
	cfg := storage.Config{
		Driver: storage.DriverSQLite,
		Prefix: "hostel:",
		SQLite: &storage.SQLiteConfig{Path: path},
	}

	store, err := storage.New(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyStudentToken, "persisted"))
	require.NoError(t, store.Close())

	reopened, err := storage.New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, err := reopened.Get(ctx, storage.KeyStudentToken)
	require.NoError(t, err)
	require.Equal(t, "persisted", value)
}

func TestSQLStoreRequiresPath(t *testing.T) {
	_, err := storage.New(context.Background(), storage.Config{Driver: storage.DriverSQLite})
	require.Error(t, err)

	_, err = sqlstore.New(nil, "")
	require.Error(t, err)
}

func TestSQLStoreClearMatchesPrefixExactly(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLiteDB(t)

	tests := []struct {
		name   string
		prefix string
		other  string
	}{
		{name: "underscore is not a wildcard", prefix: "a_", other: "ab"},
		{name: "percent is not a wildcard", prefix: "a%", other: "abc"},
		{name: "case matters", prefix: "Hostel:", other: "hostel:"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := sqlstore.New(db, tc.prefix)
			require.NoError(t, err)
			other, err := sqlstore.New(db, tc.other)
			require.NoError(t, err)

			require.NoError(t, store.Set(ctx, storage.KeyAdminToken, "drop"))
			require.NoError(t, other.Set(ctx, storage.KeyAdminToken, "keep"))

			require.NoError(t, store.Clear(ctx))
			_, err = store.Get(ctx, storage.KeyAdminToken)
			require.ErrorIs(t, err, storage.ErrKeyNotFound)
			value, err := other.Get(ctx, storage.KeyAdminToken)
			require.NoError(t, err)
			require.Equal(t, "keep", value)
			require.NoError(t, other.Clear(ctx))
		})
	}
}

func TestSQLStoreOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostel.db")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("not a database "), 512), 0o600))

	_, err := sqlstore.Open(storage.Config{Prefix: "hostel:", SQLite: &storage.SQLiteConfig{Path: path}})
	require.Error(t, err)

	_, err = storage.New(context.Background(), storage.Config{
		Driver: storage.DriverSQLite,
		Prefix: "hostel:",
		SQLite: &storage.SQLiteConfig{Path: path},
	})
	require.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}
