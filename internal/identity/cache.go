package identity

import "sync"

// NameCache memoizes resolved display names by user id. Entries are treated
// as immutable facts for the life of the cache: a profile rename is not
// reflected until Clear is called on logout/session change. That staleness is
// an accepted tradeoff, not a bug.
type NameCache struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewNameCache() *NameCache {
	return &NameCache{
		names: make(map[string]string),
	}
}

func (c *NameCache) Get(userID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name, ok := c.names[userID]
	return name, ok
}

func (c *NameCache) Set(userID string, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.names[userID] = name
}

func (c *NameCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.names = make(map[string]string)
}
