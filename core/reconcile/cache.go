package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ReconcileCache holds pre-built indices for repeated reconciliations.
type ReconcileCache struct {
	Recorded map[string]Item
	Derived  map[string]Item
	Built    time.Time
	TTL      time.Duration
}

// IsExpired reports whether the cache outlived its TTL. A zero TTL is always expired.
func (c *ReconcileCache) IsExpired() bool {
	if c.TTL == 0 {
		return true
	}
	return time.Since(c.Built) > c.TTL
}

type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*ReconcileCache
	sf     singleflight.Group
}

var globalCacheStore = &cacheStore{
	caches: make(map[string]*ReconcileCache),
}

// BuildCache loads both indices concurrently. It does not store the result.
func BuildCache(ctx context.Context, spec *Spec, db *gorm.DB) (*ReconcileCache, error) {
	var recorded, derived map[string]Item

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recorded, err = spec.Adapter.LoadRecorded(gctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		derived, err = spec.Adapter.LoadDerived(gctx, db)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ReconcileCache{
		Recorded: recorded,
		Derived:  derived,
		Built:    time.Now(),
		TTL:      spec.CacheTTL,
	}, nil
}

// GetOrBuildCache returns a fresh cached index or builds one. Concurrent callers
// for the same spec share a single build.
func GetOrBuildCache(ctx context.Context, spec *Spec, db *gorm.DB) (*ReconcileCache, error) {
	key := spec.CacheKey()

	if c := lookupCache(key); c != nil {
		return c, nil
	}

	result, err, _ := globalCacheStore.sf.Do(key, func() (interface{}, error) {
		if c := lookupCache(key); c != nil {
			return c, nil
		}
		c, err := BuildCache(ctx, spec, db)
		if err != nil {
			return nil, err
		}
		if spec.CacheTTL > 0 {
			globalCacheStore.mu.Lock()
			globalCacheStore.caches[key] = c
			globalCacheStore.mu.Unlock()
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*ReconcileCache), nil
}

func lookupCache(key string) *ReconcileCache {
	globalCacheStore.mu.RLock()
	defer globalCacheStore.mu.RUnlock()
	if c, ok := globalCacheStore.caches[key]; ok && !c.IsExpired() {
		return c
	}
	return nil
}

// InvalidateCache drops the cached indices of spec.
func InvalidateCache(spec *Spec) {
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, spec.CacheKey())
	globalCacheStore.mu.Unlock()
}
