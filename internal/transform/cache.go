package transform

import (
	"context"
	"hash/fnv"
	"sort"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCacheTTL bounds how long a transform result is reused for an
// identical request.
const DefaultCacheTTL = 10 * time.Minute

// Cached wraps a transformer with a TTL result cache. Identical
// requests (same name, args and text) within the TTL return the stored
// result without invoking the underlying transformer. Network-backed
// transformers are the intended users; cheap local transforms gain
// nothing from wrapping.
type Cached struct {
	inner Transformer
	store *gocache.Cache
}

// NewCached wraps t with a result cache. A non-positive ttl uses
// DefaultCacheTTL.
func NewCached(t Transformer, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		inner: t,
		store: gocache.New(ttl, 2*ttl),
	}
}

// Name returns the wrapped transformer's name.
func (c *Cached) Name() string { return c.inner.Name() }

// Transform implements Transformer.
func (c *Cached) Transform(ctx context.Context, req Request) (string, error) {
	key := c.cacheKey(req)
	if hit, ok := c.store.Get(key); ok {
		return hit.(string), nil
	}

	out, err := c.inner.Transform(ctx, req)
	if err != nil {
		return "", err
	}
	c.store.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}

func (c *Cached) cacheKey(req Request) string {
	h := fnv.New64a()
	h.Write([]byte(c.inner.Name()))
	h.Write([]byte{0})

	keys := make([]string, 0, len(req.Args))
	for k := range req.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(req.Args[k]))
		h.Write([]byte{0})
	}

	h.Write([]byte(req.Text))
	return strconv.FormatUint(h.Sum64(), 16)
}
