// Package feedcache holds the most recently fetched feed so a page can paint
// instantly instead of waiting on a network round trip. It is a best-effort
// latency optimization: a miss or a stale read simply triggers a normal
// fetch, and ownership is always re-derived from the live identity, never
// from here.
package feedcache

import (
	"sync"
	"time"

	"github.com/InkwellBlog/web-client/internal/model"
)

// TTL is the age past which a snapshot is discarded as stale.
const TTL = 5 * time.Minute

type entry struct {
	posts           []model.Post
	capturedAt      time.Time
	userID          string
	includeInactive bool
}

// Cache is a single-slot, user-scoped snapshot of the feed. The most recent
// Write wins; there is no history.
type Cache struct {
	mu    sync.Mutex
	now   func() time.Time
	entry *entry
}

func New() *Cache {
	return NewWithClock(time.Now)
}

// NewWithClock injects the clock, for staleness tests.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		now: now,
	}
}

// Write snapshots the feed for the given user id ("" when anonymous).
// includeInactive records which status scope was fetched; an all-statuses
// snapshot must never answer an active-only read, or the other way round.
func (c *Cache) Write(posts []model.Post, userID string, includeInactive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = &entry{
		posts:           posts,
		capturedAt:      c.now(),
		userID:          userID,
		includeInactive: includeInactive,
	}
}

// Read returns the snapshot for the given user id and status scope, or a
// miss when no entry exists, the entry belongs to a different user
// (anonymous/anonymous counts as a match), the scope differs, or the entry
// has aged past TTL. Staleness is never an error. The returned slice is a
// copy; callers may mutate it without corrupting the snapshot.
func (c *Cache) Read(userID string, includeInactive bool) ([]model.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil {
		return nil, false
	}
	if c.entry.userID != userID {
		return nil, false
	}
	if c.entry.includeInactive != includeInactive {
		return nil, false
	}
	if c.now().Sub(c.entry.capturedAt) >= TTL {
		return nil, false
	}

	return append([]model.Post(nil), c.entry.posts...), true
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = nil
}
