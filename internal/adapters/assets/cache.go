package assets

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCacheTTL es corto a propósito: al bucket se le pueden subir
// fotos nuevas en cualquier momento y el sondeo tiene que reencontrarlas.
const DefaultCacheTTL = 15 * time.Minute

type resolver interface {
	Resolve(ctx context.Context, name string) []string
}

// CachedResolver memoiza el resultado del sondeo por nombre de
// individuo. Sin esto cada card de la grilla costaría hasta 126 HEADs;
// el core de resolución queda puro y sin estado, la cache es solo este
// decorator.
type CachedResolver struct {
	inner resolver
	cache *gocache.Cache
}

func NewCachedResolver(inner resolver, ttl time.Duration) *CachedResolver {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedResolver{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedResolver) Resolve(ctx context.Context, name string) []string {
	if v, ok := c.cache.Get(name); ok {
		if urls, ok := v.([]string); ok {
			return urls
		}
	}

	urls := c.inner.Resolve(ctx, name)
	c.cache.SetDefault(name, urls)
	return urls
}
