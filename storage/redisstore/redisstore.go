package redisstore

import (
	"context"
	"strings"

	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ storage.Store = (*RedisStore)(nil)

func init() {
	storage.Register(storage.DriverRedis, New)
}

// RedisStore shares credentials between several terminals through one Redis
// instance. Keys carry no TTL; logout removes them.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// New constructs a redis backed store and checks the connection. The prefix
// is required since Clear deletes every key under it.
func New(ctx context.Context, cfg storage.Config) (storage.Store, error) {
	if cfg.Redis == nil {
		return nil, errors.New("[RedisStore.New] redis configuration missing")
	}
	if cfg.Redis.Addr == "" {
		return nil, errors.New("[RedisStore.New] redis address required")
	}
	if cfg.Prefix == "" {
		return nil, errors.New("[RedisStore.New] key prefix required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "[RedisStore.New] ping")
	}

	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", storage.ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "[RedisStore.Get] %s", key)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(s.client.Set(ctx, s.key(key), value, 0).Err(), "[RedisStore.Set] %s", key)
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return errors.Wrapf(s.client.Del(ctx, s.key(key)).Err(), "[RedisStore.Remove] %s", key)
}

// Clear deletes only the keys under this store's prefix.
func (s *RedisStore) Clear(ctx context.Context) error {
	var cursor uint64
	pattern := globEscaper.Replace(s.prefix) + "*"
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return errors.Wrap(err, "[RedisStore.Clear] scan")
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "[RedisStore.Clear] del")
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// globEscaper quotes the characters SCAN MATCH treats as pattern syntax.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
