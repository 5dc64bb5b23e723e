package session

import (
    "context"
    "sync"

    "github.com/redis/go-redis/v9"
)

// KV is the minimal durable key/value surface the Store needs.  Get
// reports ok=false when the key is absent; absence is not an error.
type KV interface {
    Get(ctx context.Context, key string) (value string, ok bool, err error)
    Set(ctx context.Context, key, value string) error
    Del(ctx context.Context, key string) error
}

// RedisKV stores records in Redis without a TTL; expiry is handled by the
// Store's lazy invalidation, not by the server.
type RedisKV struct{ Client *redis.Client }

func NewRedisKV(client *redis.Client) *RedisKV { return &RedisKV{Client: client} }

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
    v, err := r.Client.Get(ctx, key).Result()
    if err == redis.Nil {
        return "", false, nil
    }
    if err != nil {
        return "", false, err
    }
    return v, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
    return r.Client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
    return r.Client.Del(ctx, key).Err()
}

// MemoryKV is the in-process fallback used when Redis is unavailable and
// by tests.  It is safe for concurrent use.
type MemoryKV struct {
    mu sync.RWMutex
    m  map[string]string
}

func NewMemoryKV() *MemoryKV { return &MemoryKV{m: map[string]string{}} }

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
    m.mu.RLock()
    defer m.mu.RUnlock()
    v, ok := m.m[key]
    return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.m[key] = value
    return nil
}

func (m *MemoryKV) Del(_ context.Context, key string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    delete(m.m, key)
    return nil
}
