package outdated

import (
	"testing"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

const condaForgeURL = "https://conda.anaconda.org/conda-forge"

func TestDiff_EmitsOnStringInequality(t *testing.T) {
	cache := NewCache()
	cache.put(domain.Identity{Name: "numpy", Origin: condaForgeURL, Ecosystem: domain.EcosystemConda}, domain.FoundVersion("1.26.4"))
	cache.put(domain.Identity{Name: "requests", Ecosystem: domain.EcosystemPypi}, domain.FoundVersion("2.31.0"))

	records := []domain.PackageRecord{
		{Name: "numpy", InstalledVersion: "1.26.0", Ecosystem: domain.EcosystemConda, Origin: condaForgeURL},
		{Name: "requests", InstalledVersion: "2.31.0", Ecosystem: domain.EcosystemPypi},
	}

	updates := Diff(records, cache)

	assert.Equal(t, []domain.UpdateRecord{
		{Name: "numpy", InstalledVersion: "1.26.0", LatestVersion: "1.26.4"},
	}, updates)
}

func TestDiff_DowngradeStillCounts(t *testing.T) {
	// The comparison is exact string inequality. A channel whose newest
	// entry orders below the installed version still produces a record.
	cache := NewCache()
	cache.put(domain.Identity{Name: "dev-build", Ecosystem: domain.EcosystemPypi}, domain.FoundVersion("1.0.0"))

	updates := Diff([]domain.PackageRecord{
		{Name: "dev-build", InstalledVersion: "2.0.0.dev1", Ecosystem: domain.EcosystemPypi},
	}, cache)

	assert.Len(t, updates, 1)
	assert.Equal(t, "1.0.0", updates[0].LatestVersion)
}

func TestDiff_SkipsUnresolvedStates(t *testing.T) {
	cache := NewCache()
	cache.put(domain.Identity{Name: "gone", Ecosystem: domain.EcosystemPypi}, domain.NoVersion())
	cache.put(domain.Identity{Name: "broken", Ecosystem: domain.EcosystemPypi}, domain.FailedLookup(zerr.New("boom")))

	updates := Diff([]domain.PackageRecord{
		{Name: "gone", InstalledVersion: "1.0.0", Ecosystem: domain.EcosystemPypi},
		{Name: "broken", InstalledVersion: "1.0.0", Ecosystem: domain.EcosystemPypi},
		{Name: "never-queried", InstalledVersion: "1.0.0", Ecosystem: domain.EcosystemPypi},
	}, cache)

	assert.Empty(t, updates)
	assert.NotNil(t, updates)
}

func TestDiff_PreservesInputOrder(t *testing.T) {
	cache := NewCache()
	for _, name := range []string{"zlib", "attrs", "numpy"} {
		cache.put(domain.Identity{Name: name, Ecosystem: domain.EcosystemPypi}, domain.FoundVersion("9.9.9"))
	}

	updates := Diff([]domain.PackageRecord{
		{Name: "zlib", InstalledVersion: "1.2.13", Ecosystem: domain.EcosystemPypi},
		{Name: "attrs", InstalledVersion: "23.1.0", Ecosystem: domain.EcosystemPypi},
		{Name: "numpy", InstalledVersion: "1.26.0", Ecosystem: domain.EcosystemPypi},
	}, cache)

	names := make([]string, 0, len(updates))
	for _, u := range updates {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"zlib", "attrs", "numpy"}, names)
}
