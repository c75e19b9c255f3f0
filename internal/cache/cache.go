// Package cache provides a small TTL'd LRU used to memoize per-owner
// report summaries between mutations.
package cache

import (
	"context"
	"time"
)

// Cache is a generic key/value cache.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T)
	Delete(key string)
	Size() int
}

// Cleaner is implemented by caches that support expiry sweeps.
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically sweeps expired entries from registered caches.
type Janitor struct {
	caches   []Cleaner
	interval time.Duration
}

// NewJanitor creates a janitor sweeping at the given interval.
func NewJanitor(interval time.Duration) *Janitor {
	return &Janitor{interval: interval}
}

// Register adds a cache to the sweep set. Not safe to call after Run.
func (j *Janitor) Register(c Cleaner) {
	j.caches = append(j.caches, c)
}

// Run sweeps until ctx is cancelled. It always returns ctx.Err().
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, c := range j.caches {
				c.CleanExpired()
			}
		}
	}
}
