package storage_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/jrsteele09/hostel-admin/storage/memstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string) (string, error) { return "", errBroken }
func (brokenStore) Set(context.Context, string, string) error   { return errBroken }
func (brokenStore) Remove(context.Context, string) error        { return errBroken }
func (brokenStore) Clear(context.Context) error                 { return errBroken }
func (brokenStore) Close() error                                { return nil }

func TestAccessorWithoutStore(t *testing.T) {
	ctx := context.Background()
	accessors := map[string]*storage.Accessor{
		"nil store":    storage.NewAccessor(nil),
		"nil accessor": nil,
	}
	for name, a := range accessors {
		t.Run(name, func(t *testing.T) {
			require.False(t, a.Available())
			require.NotPanics(t, func() {
				a.Set(ctx, storage.KeyAdminToken, "abc")
				a.Remove(ctx, storage.KeyAdminToken)
				a.Clear(ctx)
			})
			value, ok := a.Get(ctx, storage.KeyAdminToken)
			require.False(t, ok)
			require.Empty(t, value)
			require.NoError(t, a.Close())
		})
	}
}

func TestAccessorSwallowsAndLogsErrors(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	a := storage.NewAccessor(brokenStore{}, storage.WithLogger(zerolog.New(&buf)))

	require.NotPanics(t, func() {
		a.Set(ctx, storage.KeyAdminToken, "abc")
		a.Remove(ctx, storage.KeyAdminToken)
		a.Clear(ctx)
	})
	_, ok := a.Get(ctx, storage.KeyAdminToken)
	require.False(t, ok)

	require.Contains(t, buf.String(), "storage set failed")
	require.Contains(t, buf.String(), "storage get failed")
	require.Contains(t, buf.String(), "disk on fire")
}

func TestAccessorJSON(t *testing.T) {
	ctx := context.Background()
	a := storage.NewAccessor(memstore.New(""), storage.WithLogger(zerolog.Nop()))

	type profile struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	a.SetJSON(ctx, storage.KeyAdminProfile, profile{ID: "1", Email: "a@b.com"})

	var got profile
	require.True(t, a.GetJSON(ctx, storage.KeyAdminProfile, &got))
	require.Equal(t, profile{ID: "1", Email: "a@b.com"}, got)

	a.Set(ctx, storage.KeyStudentProfile, "{not json")
	require.False(t, a.GetJSON(ctx, storage.KeyStudentProfile, &got))
	require.False(t, a.GetJSON(ctx, "absent", &got))
}
