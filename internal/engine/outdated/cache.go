package outdated

import (
	"sort"
	"sync"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
)

// Cache is the per-run version cache. Each identity's slot is written at
// most once during the query phase and only read afterwards, so the content
// is independent of query completion order.
type Cache struct {
	mu      sync.Mutex
	results map[domain.Identity]domain.VersionResult
}

// NewCache creates an empty version cache.
func NewCache() *Cache {
	return &Cache{results: make(map[domain.Identity]domain.VersionResult)}
}

// put stores the result for an identity. The first write wins; a second
// write for the same identity is ignored, preserving the write-once
// discipline even under a misbehaving caller.
func (c *Cache) put(id domain.Identity, res domain.VersionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.results[id]; exists {
		return
	}
	c.results[id] = res
}

// Get returns the cached result for an identity. A missing entry means no
// lookup was attempted (or never finished) and must be treated by callers as
// "no information".
func (c *Cache) Get(id domain.Identity) (domain.VersionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.results[id]
	return res, ok
}

// Len returns the number of resolved identities.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// Warnings collects the failed lookups, sorted by package name then origin
// for deterministic reporting.
func (c *Cache) Warnings() []domain.LookupWarning {
	c.mu.Lock()
	defer c.mu.Unlock()

	var warnings []domain.LookupWarning
	for id, res := range c.results {
		if res.State == domain.VersionFailed {
			warnings = append(warnings, domain.LookupWarning{Identity: id, Err: res.Err})
		}
	}
	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].Identity.Name != warnings[j].Identity.Name {
			return warnings[i].Identity.Name < warnings[j].Identity.Name
		}
		return warnings[i].Identity.Origin < warnings[j].Identity.Origin
	})
	return warnings
}
