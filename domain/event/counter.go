package event

import "sync"

// Counter keeps the number of handled events per type.
type Counter struct {
	mu     sync.RWMutex
	counts map[Type]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]int)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[t]
}

// Snapshot returns a copy of all counters, safe to log or iterate.
func (c *Counter) Snapshot() map[Type]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make(map[Type]int, len(c.counts))
	for t, n := range c.counts {
		snapshot[t] = n
	}
	return snapshot
}
