package assets

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// defaultCleanupInterval is how often expired cache entries are purged.
const defaultCleanupInterval = 10 * time.Minute

// CachedResolver memoizes resolved asset text with a TTL. Misses and errors
// are never cached, so a later call retries the full lookup chain — useful
// when an asset appears in the writable data directory after first launch.
// Safe for concurrent use.
type CachedResolver struct {
	inner TextResolver
	cache *gocache.Cache
}

// NewCachedResolver wraps a resolver with a TTL text cache. A non-positive
// ttl caches forever (assets are immutable for most shipped games).
func NewCachedResolver(inner TextResolver, ttl time.Duration) *CachedResolver {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &CachedResolver{
		inner: inner,
		cache: gocache.New(ttl, defaultCleanupInterval),
	}
}

// ResolveText returns the cached text for name, resolving and caching on
// first use.
func (c *CachedResolver) ResolveText(name string) (string, error) {
	if cached, found := c.cache.Get(name); found {
		return cached.(string), nil
	}

	text, err := c.inner.ResolveText(name)
	if err != nil {
		return "", err
	}

	c.cache.Set(name, text, gocache.DefaultExpiration)
	return text, nil
}

// Invalidate drops the cached entry for name, if any.
func (c *CachedResolver) Invalidate(name string) {
	c.cache.Delete(name)
}

// Flush drops every cached entry.
func (c *CachedResolver) Flush() {
	c.cache.Flush()
}
