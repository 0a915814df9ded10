package storage

import (
	"context"
	"errors"
)

// Keys used for credentials and cached profiles.
const (
	KeyAdminToken     = "auth_token"
	KeyStudentToken   = "student_token"
	KeyRefreshToken   = "refresh_token"
	KeyAdminProfile   = "admin_profile"
	KeyStudentProfile = "student_profile"
)

// ErrKeyNotFound is returned by a Store when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a string key-value backend. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value for key or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set creates or replaces the value for key
	Set(ctx context.Context, key, value string) error

	// Remove deletes key; removing a missing key is not an error
	Remove(ctx context.Context, key string) error

	// Clear deletes every key owned by this store
	Clear(ctx context.Context) error

	// Close releases any underlying connection
	Close() error
}
