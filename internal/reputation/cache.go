package reputation

import (
	"sync"

	"github.com/offersentry/offersentry/internal/domain"
)

// Cache stores company verification results keyed by company name.
//
// Policy: entries never expire within the process lifetime and are not
// durable across restarts. Concurrent first-time lookups for the same
// company may both miss and both populate; last writer wins, which is
// acceptable because verifications for the same name converge.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]domain.CompanyVerification
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]domain.CompanyVerification)}
}

// Get returns the cached verification for a company, if present.
func (c *Cache) Get(company string) (domain.CompanyVerification, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[company]
	return v, ok
}

// Put stores a verification result.
func (c *Cache) Put(company string, v domain.CompanyVerification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[company] = v
}

// Len returns the number of cached companies.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
