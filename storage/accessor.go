package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Accessor wraps an optional Store so callers never deal with a missing
// backend or backend failures. Reads return ("", false) and writes become
// no-ops; errors are logged and swallowed.
type Accessor struct {
	store  Store
	logger zerolog.Logger
}

type AccessorOption func(*Accessor)

func WithLogger(logger zerolog.Logger) AccessorOption {
	return func(a *Accessor) {
		a.logger = logger
	}
}

// NewAccessor accepts a nil store, which behaves like storage being unavailable.
func NewAccessor(store Store, options ...AccessorOption) *Accessor {
	a := &Accessor{store: store, logger: log.Logger}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Available reports whether a backend is attached.
func (a *Accessor) Available() bool {
	return a != nil && a.store != nil
}

func (a *Accessor) Get(ctx context.Context, key string) (string, bool) {
	if !a.Available() {
		return "", false
	}
	value, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			a.logger.Error().Err(err).Str("key", key).Msg("storage get failed")
		}
		return "", false
	}
	return value, true
}

func (a *Accessor) Set(ctx context.Context, key, value string) {
	if !a.Available() {
		return
	}
	if err := a.store.Set(ctx, key, value); err != nil {
		a.logger.Error().Err(err).Str("key", key).Msg("storage set failed")
	}
}

func (a *Accessor) Remove(ctx context.Context, key string) {
	if !a.Available() {
		return
	}
	if err := a.store.Remove(ctx, key); err != nil {
		a.logger.Error().Err(err).Str("key", key).Msg("storage remove failed")
	}
}

func (a *Accessor) Clear(ctx context.Context) {
	if !a.Available() {
		return
	}
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error().Err(err).Msg("storage clear failed")
	}
}

// GetJSON decodes the value under key into v. A missing key or a value that
// is not valid JSON both report false.
func (a *Accessor) GetJSON(ctx context.Context, key string, v any) bool {
	raw, ok := a.Get(ctx, key)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		a.logger.Warn().Err(err).Str("key", key).Msg("stored value is not valid json")
		return false
	}
	return true
}

func (a *Accessor) SetJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		a.logger.Error().Err(err).Str("key", key).Msg("storage value not serialisable")
		return
	}
	a.Set(ctx, key, string(data))
}

// Close closes the backend if there is one.
func (a *Accessor) Close() error {
	if !a.Available() {
		return nil
	}
	return a.store.Close()
}
