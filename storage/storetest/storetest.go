// Package storetest holds behaviour checks every storage backend must pass.
package storetest

import (
	"context"
	"testing"

	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/stretchr/testify/require"
)

// Run exercises get/set/remove/clear on a fresh store.
func Run(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, storage.KeyAdminToken, "abc"))
		value, err := store.Get(ctx, storage.KeyAdminToken)
		require.NoError(t, err)
		require.Equal(t, "abc", value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, storage.KeyAdminToken, "def"))
		value, err := store.Get(ctx, storage.KeyAdminToken)
		require.NoError(t, err)
		require.Equal(t, "def", value)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, storage.KeyAdminToken))
		_, err := store.Get(ctx, storage.KeyAdminToken)
		require.ErrorIs(t, err, storage.ErrKeyNotFound)
		require.NoError(t, store.Remove(ctx, storage.KeyAdminToken))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, storage.KeyStudentToken, "s"))
		require.NoError(t, store.Set(ctx, storage.KeyStudentProfile, `{"id":"1"}`))
		require.NoError(t, store.Clear(ctx))
		_, err := store.Get(ctx, storage.KeyStudentToken)
		require.ErrorIs(t, err, storage.ErrKeyNotFound)
		_, err = store.Get(ctx, storage.KeyStudentProfile)
		require.ErrorIs(t, err, storage.ErrKeyNotFound)
	})
}
