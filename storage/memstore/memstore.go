package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/jrsteele09/hostel-admin/storage"
)

var _ storage.Store = (*MemStore)(nil)

func init() {
	storage.Register(storage.DriverMemory, func(_ context.Context, cfg storage.Config) (storage.Store, error) {
		return New(cfg.Prefix), nil
	})
}

// MemStore keeps values for the lifetime of the process, the same lifetime a
// browser tab gives its session storage.
type MemStore struct {
	prefix string
	values map[string]string
	lock   sync.RWMutex
}

func New(prefix string) *MemStore {
	return &MemStore{
		prefix: prefix,
		values: make(map[string]string),
	}
}

func (m *MemStore) Get(_ context.Context, key string) (string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	value, ok := m.values[m.prefix+key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return value, nil
}

func (m *MemStore) Set(_ context.Context, key, value string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.values[m.prefix+key] = value
	return nil
}

func (m *MemStore) Remove(_ context.Context, key string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.values, m.prefix+key)
	return nil
}

func (m *MemStore) Clear(_ context.Context) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for k := range m.values {
		if strings.HasPrefix(k, m.prefix) {
			delete(m.values, k)
		}
	}
	return nil
}

func (m *MemStore) Close() error {
	return nil
}

// Len is the number of stored keys.
func (m *MemStore) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.values)
}
