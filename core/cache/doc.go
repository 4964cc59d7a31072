// Package cache provides the short-lived key/value store behind merge
// confirmation tokens.
//
// When cache.enabled is set the store is Redis (go-redis), so a confirmation
// issued by one instance can be redeemed on another. Otherwise a mutex guarded
// map with per-key expiry is used, which is enough for a single instance.
//
// # Usage
//
//	store, err := cache.New(ctx, cfg.Cache)
//	_ = store.Set(ctx, "merge:confirm:"+token, payload, 15*time.Minute)
//	b, err := store.Get(ctx, "merge:confirm:"+token)
//	if errors.Is(err, cache.ErrMiss) {
//	    // expired or never issued
//	}
package cache
