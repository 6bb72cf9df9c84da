package auth

import (
	"context"
	"homestay/config"
	"homestay/shared"
	"homestay/shared/cache"
	"sync"

	"github.com/rs/zerolog/log"
)

// Storage is a named-slot key/value store. Reads from a missing or unavailable store
// come back empty instead of failing, and writes that cannot be persisted are logged and dropped.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage keeps slots in process memory. The console uses it with no session id,
// which leaves a single unscoped set of slots for the one operator.
func NewMemoryStorage() Storage {
	return &memoryStorage{values: make(map[string]string)}
}

func (m *memoryStorage) key(ctx context.Context, name string) string {
	if sessionID := SessionID(ctx); sessionID != "" {
		return sessionID + ":" + name
	}

	return name
}

func (m *memoryStorage) Get(ctx context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[m.key(ctx, key)]

	return value, ok
}

func (m *memoryStorage) Set(ctx context.Context, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[m.key(ctx, key)] = value
}

func (m *memoryStorage) Remove(ctx context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, m.key(ctx, key))
}

// NoopStorage stands in when there is no storage at all.
type NoopStorage struct{}

func (NoopStorage) Get(context.Context, string) (string, bool) { return "", false }
func (NoopStorage) Set(context.Context, string, string)        {}
func (NoopStorage) Remove(context.Context, string)             {}

type redisStorage struct {
	cache  cache.RedisCache
	prefix string
	ttl    int
}

// NewRedisStorage keeps slots in Redis under the caller's session id, so every gateway
// replica sees a caller's session and no caller sees another's. Without a session id on
// the context there is nothing to read and writes are dropped.
func NewRedisStorage(redisCache cache.RedisCache, cfg *config.Config) Storage {
	return &redisStorage{
		cache:  redisCache,
		prefix: shared.BuildCacheKey(cfg.Cache.Prefix, "storage"),
		ttl:    cfg.Session.TTLSeconds,
	}
}

func (r *redisStorage) key(ctx context.Context, name string) (string, bool) {
	sessionID := SessionID(ctx)
	if sessionID == "" {
		return "", false
	}

	return shared.BuildCacheKey(r.prefix, sessionID, name), true
}

func (r *redisStorage) Get(ctx context.Context, key string) (string, bool) {
	slot, ok := r.key(ctx, key)
	if !ok {
		return "", false
	}

	var value string

	if err := r.cache.Get(ctx, slot, &value); err != nil {
		if !cache.IsMiss(err) {
			log.Warn().Err(err).Str("key", key).Msg("storage unavailable, treating slot as empty")
		}

		return "", false
	}

	return value, true
}

func (r *redisStorage) Set(ctx context.Context, key, value string) {
	slot, ok := r.key(ctx, key)
	if !ok {
		log.Warn().Str("key", key).Msg("no session id, storage slot not persisted")

		return
	}

	if err := r.cache.Save(ctx, slot, value, r.ttl); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to persist storage slot")
	}
}

func (r *redisStorage) Remove(ctx context.Context, key string) {
	slot, ok := r.key(ctx, key)
	if !ok {
		return
	}

	if err := r.cache.Delete(ctx, slot); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to remove storage slot")
	}
}
