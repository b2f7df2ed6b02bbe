// Package cache keeps the last collected article set in a single key-value slot
// and answers validity queries against a TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsnet/pkg/domain"
)

// Key is the fixed slot name of the cached article set
const Key = "newsnet.articles"

// DefaultTTL is used when Cache is made with zero ttl
const DefaultTTL = 30 * time.Minute

// Cache is a single-slot TTL cache over a Store
type Cache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// New makes a Cache. Nil clock means time.Now.
func New(store Store, ttl time.Duration, clock func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &Cache{store: store, ttl: ttl, now: clock}
}

// TTL returns the cache time-to-live
func (c *Cache) TTL() time.Duration { return c.ttl }

// Load returns the cached entry if it is still valid
func (c *Cache) Load(ctx context.Context) (domain.CacheEntry, bool) {
	entry, ok := c.Last(ctx)
	if !ok || !c.Fresh(entry) {
		return domain.CacheEntry{}, false
	}
	return entry, true
}

// Last returns the cached entry regardless of its age.
// Missing, unreadable and undecodable slots are reported as absent.
func (c *Cache) Last(ctx context.Context) (domain.CacheEntry, bool) {
	val, err := c.store.Get(ctx, Key)
	if err != nil {
		lgr.Printf("[WARN] can't read cache: %v", err)
		return domain.CacheEntry{}, false
	}
	if val == "" {
		return domain.CacheEntry{}, false
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		lgr.Printf("[WARN] can't decode cache, ignored: %v", err)
		return domain.CacheEntry{}, false
	}
	if entry.Articles == nil {
		entry.Articles = []domain.Article{}
	}
	return entry, true
}

// Fresh reports whether entry is younger than TTL
func (c *Cache) Fresh(entry domain.CacheEntry) bool {
	return c.now().Sub(time.UnixMilli(entry.LastUpdate)) < c.ttl
}

// Save replaces the cached set and stamps it with the current time
func (c *Cache) Save(ctx context.Context, articles []domain.Article) error {
	return c.write(ctx, domain.CacheEntry{Articles: articles, LastUpdate: c.now().UnixMilli()})
}

// Rewrite replaces the cached set keeping the previous timestamp, so the TTL is not extended.
// With no previous entry it acts as Save.
func (c *Cache) Rewrite(ctx context.Context, articles []domain.Article) error {
	entry, ok := c.Last(ctx)
	if !ok {
		return c.Save(ctx, articles)
	}
	return c.write(ctx, domain.CacheEntry{Articles: articles, LastUpdate: entry.LastUpdate})
}

// IsValid reports whether the cached set is younger than TTL
func (c *Cache) IsValid(ctx context.Context) bool {
	_, ok := c.Load(ctx)
	return ok
}

func (c *Cache) write(ctx context.Context, entry domain.CacheEntry) error {
	if entry.Articles == nil {
		entry.Articles = []domain.Article{}
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.store.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}
