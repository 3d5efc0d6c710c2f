package extract

import "sync"

// Counter issues page identifiers. The first call to Next returns 1 and
// every later call returns the previous value plus one. The zero value is
// ready to use.
type Counter struct {
	mu     sync.Mutex
	issued int
}

// NewCounter creates a new Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Next increments the counter and returns the new identifier.
func (c *Counter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Issued returns how many identifiers have been handed out.
func (c *Counter) Issued() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issued
}
