package outdated

import (
	"sync"
	"testing"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func cacheID(name string) domain.Identity {
	return domain.Identity{Name: name, Ecosystem: domain.EcosystemPypi}
}

func TestCache_FirstWriteWins(t *testing.T) {
	c := NewCache()
	id := cacheID("requests")

	c.put(id, domain.FoundVersion("2.32.0"))
	c.put(id, domain.FoundVersion("9.9.9"))

	res, ok := c.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "2.32.0", res.Version)
	assert.Equal(t, 1, c.Len())
}

func TestCache_MissingEntry(t *testing.T) {
	c := NewCache()

	_, ok := c.Get(cacheID("requests"))
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentWritersDistinctIdentities(t *testing.T) {
	c := NewCache()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.put(cacheID(name), domain.FoundVersion("1.0.0"))
		}()
	}
	wg.Wait()

	assert.Equal(t, len(names), c.Len())
}

func TestCache_WarningsSortedAndFiltered(t *testing.T) {
	c := NewCache()
	c.put(cacheID("zlib"), domain.FailedLookup(zerr.New("boom")))
	c.put(cacheID("attrs"), domain.FailedLookup(zerr.New("boom")))
	c.put(cacheID("numpy"), domain.FoundVersion("1.26.4"))
	c.put(cacheID("gone"), domain.NoVersion())

	warnings := c.Warnings()

	assert.Len(t, warnings, 2)
	assert.Equal(t, "attrs", warnings[0].Identity.Name)
	assert.Equal(t, "zlib", warnings[1].Identity.Name)
}
