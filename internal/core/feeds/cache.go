package feeds

import (
	"log/slog"
	"sync"
	"time"

	"Quill/internal/core/posts"
)

// HomeFeedCache is a single-slot, time-boxed cache of the assembled home
// feed. Only the unfiltered global feed is cached; group, profile and
// follow feeds are always recomputed. A reader never observes an entry
// at or past its expiry instant, and Invalidate takes effect immediately
// for every subsequent reader.
type HomeFeedCache struct {
	mu      sync.RWMutex
	entry   []*posts.Post
	expires time.Time
	valid   bool
	ttl     time.Duration
	logger  *slog.Logger
}

// NewHomeFeedCache creates a home feed cache with the specified TTL
func NewHomeFeedCache(ttl time.Duration, logger *slog.Logger) *HomeFeedCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &HomeFeedCache{
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached feed, or nil and false on a miss or after expiry
func (c *HomeFeedCache) Get() ([]*posts.Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid || !time.Now().Before(c.expires) {
		return nil, false
	}

	return c.entry, true
}

// Set stores the assembled feed and stamps a fresh expiry
func (c *HomeFeedCache) Set(feed []*posts.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = feed
	c.expires = time.Now().Add(c.ttl)
	c.valid = true

	c.logger.Debug("home feed cached",
		"post_count", len(feed),
		"expires_at", c.expires)
}

// Invalidate drops the cached feed so the next Get is a miss.
// Called on every post create/update/delete and by administration.
func (c *HomeFeedCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = nil
	c.valid = false

	c.logger.Debug("home feed cache invalidated")
}
