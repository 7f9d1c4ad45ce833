// Package querycache is the keyed read cache between callers and the
// resource gateways. Concurrent reads of the same key collapse into one
// backend call, entries serve reads within a staleness window, and mutations
// invalidate whole resources, triggering fire-and-forget background
// refetches.
package querycache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// FetchFunc performs the underlying gateway call for a key.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
	gen       uint64
	fetch     FetchFunc
}

type Cache struct {
	ttl time.Duration
	log zerolog.Logger

	mu      sync.Mutex
	entries map[Key]*entry
	// gens is keyed by resource name so an invalidation supersedes every
	// in-flight fetch for the resource, including first fetches that have
	// no entry yet.
	gens map[string]uint64

	sf singleflight.Group
}

// New creates a cache whose entries stay fresh for ttl. A non-positive ttl
// means every read refetches (still deduplicated while in flight).
func New(ttl time.Duration, log zerolog.Logger) *Cache {
	return &Cache{
		ttl:     ttl,
		log:     log,
		entries: make(map[Key]*entry),
		gens:    make(map[string]uint64),
	}
}

// Get returns the cached value for key, fetching through fetch when the entry
// is missing or stale. Identical keys requested concurrently share one
// in-flight call. A fetch that was superseded by an invalidation before it
// resolved is returned to its caller but not stored.
func (c *Cache) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.fresh(e) {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	startGen := c.gens[key.Resource]
	c.mu.Unlock()

	v, err, _ := c.sf.Do(key.String(), func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, val, startGen, fetch)
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate marks every cached key of the given resources stale and kicks a
// background refetch for each. The refetches are not awaited; callers observe
// the refreshed data on a later read.
func (c *Cache) Invalidate(resources ...string) {
	names := make(map[string]bool, len(resources))
	for _, r := range resources {
		names[r] = true
	}

	type refetch struct {
		key   Key
		gen   uint64
		fetch FetchFunc
	}
	var pending []refetch

	c.mu.Lock()
	for _, r := range resources {
		c.gens[r]++
	}
	for key, e := range c.entries {
		if !names[key.Resource] {
			continue
		}
		e.stale = true
		if e.fetch != nil {
			pending = append(pending, refetch{key: key, gen: c.gens[key.Resource], fetch: e.fetch})
		}
	}
	c.mu.Unlock()

	for _, r := range pending {
		go func(r refetch) {
			val, err := r.fetch(context.Background())
			if err != nil {
				c.log.Debug().Err(err).Str("key", r.key.String()).Msg("background refetch failed")
				return
			}
			c.store(r.key, val, r.gen, r.fetch)
		}(r)
	}
}

// Mutate runs a write and, only on success, invalidates the named resources.
func (c *Cache) Mutate(ctx context.Context, do func(context.Context) error, resources ...string) error {
	if err := do(ctx); err != nil {
		return err
	}
	c.Invalidate(resources...)
	return nil
}

// store applies a fetch result unless the key moved to a newer generation
// while the fetch was in flight.
func (c *Cache) store(key Key, val any, gen uint64, fetch FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key.Resource] != gen {
		return
	}
	c.entries[key] = &entry{
		value:     val,
		fetchedAt: time.Now(),
		gen:       gen,
		fetch:     fetch,
	}
}

func (c *Cache) fresh(e *entry) bool {
	return !e.stale && c.ttl > 0 && time.Since(e.fetchedAt) < c.ttl
}

// Query is the typed wrapper over Cache.Get.
func Query[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	v, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
