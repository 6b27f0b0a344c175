package adapter

import (
	"context"
	"sync"
	"time"

	"autoworld/internal/domain"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryCacheAdapter is an in-process domain.Cache used when no Redis address is configured.
// Expired entries are evicted by ttlcache's cleanup loop until Close is called.
type MemoryCacheAdapter struct {
	// mu makes Expire's read-then-rewrite atomic with respect to Set and Delete.
	mu    sync.Mutex
	items *ttlcache.Cache[string, string]
}

// NewMemoryCacheAdapter creates an empty in-memory cache and starts its cleanup loop.
func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	items := ttlcache.New[string, string](
		ttlcache.WithDisableTouchOnHit[string, string](), // only Expire slides a deadline, as in Redis
	)
	go items.Start()
	return &MemoryCacheAdapter{items: items}
}

func ttlFor(expiration time.Duration) time.Duration {
	if expiration <= 0 {
		return ttlcache.NoTTL
	}
	return expiration
}

func (m *MemoryCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	item := m.items.Get(key)
	if item == nil {
		return "", domain.ErrCacheMiss
	}
	return item.Value(), nil
}

func (m *MemoryCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items.Set(key, value, ttlFor(expiration))
	return nil
}

func (m *MemoryCacheAdapter) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items.Delete(key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryCacheAdapter) Expire(ctx context.Context, key string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := m.items.Get(key)
	if item == nil {
		return domain.ErrCacheMiss
	}
	m.items.Set(key, item.Value(), ttlFor(expiration))
	return nil
}

// Close stops the cleanup loop.
func (m *MemoryCacheAdapter) Close() {
	m.items.Stop()
}
