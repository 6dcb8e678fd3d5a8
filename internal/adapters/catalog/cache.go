package catalog

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"redpanda-site/internal/domain/pandas"
)

// DefaultCacheTTL acota cuántas veces por minuto se baja el Excel; el
// padrón cambia a escala de días, así que unos minutos de staleness no
// molestan a nadie.
const DefaultCacheTTL = 5 * time.Minute

const cacheKey = "catalog"

// CachedLoader decora un Loader con una cache TTL. El loader de abajo
// sigue siendo stateless; la corrección nunca depende de que esta cache
// exista. Un load degradado (ambas fuentes fallaron) no se cachea, para
// reintentar en el próximo request.
type CachedLoader struct {
	inner pandas.Loader
	cache *gocache.Cache
}

func NewCachedLoader(inner pandas.Loader, ttl time.Duration) *CachedLoader {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedLoader{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedLoader) Load(ctx context.Context) ([]pandas.Panda, error) {
	if v, ok := c.cache.Get(cacheKey); ok {
		if list, ok := v.([]pandas.Panda); ok {
			return list, nil
		}
	}

	list, err := c.inner.Load(ctx)
	if err != nil {
		return list, err
	}
	c.cache.SetDefault(cacheKey, list)
	return list, nil
}
