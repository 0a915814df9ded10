package memstore_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/jrsteele09/hostel-admin/storage/memstore"
	"github.com/jrsteele09/hostel-admin/storage/storetest"
	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	storetest.Run(t, memstore.New("test:"))
}

func TestFactoryDefaultsToMemory(t *testing.T) {
	store, err := storage.New(context.Background(), storage.Config{})
	require.NoError(t, err)
	require.IsType(t, &memstore.MemStore{}, store)
}

func TestFactoryNoneAndUnknown(t *testing.T) {
	store, err := storage.New(context.Background(), storage.Config{Driver: storage.DriverNone})
	require.NoError(t, err)
	require.Nil(t, store)

	_, err = storage.New(context.Background(), storage.Config{Driver: "floppy"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown storage driver")
}
