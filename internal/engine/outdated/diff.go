package outdated

import "github.com/benmoss/pixi-outdated/internal/core/domain"

// Diff re-walks one platform's package list against the resolved cache and
// emits an update record for every package whose cached latest version
// differs from its installed version. The comparison is exact string
// inequality; version ordering is the oracles' concern, not the engine's.
//
// Records whose identity has no cache entry, no resolved version, or a
// failed lookup emit nothing. Output order follows the input record order.
func Diff(records []domain.PackageRecord, cache *Cache) []domain.UpdateRecord {
	updates := make([]domain.UpdateRecord, 0, len(records))
	for _, rec := range records {
		res, ok := cache.Get(domain.IdentityOf(rec))
		if !ok || res.State != domain.VersionFound {
			continue
		}
		if res.Version == rec.InstalledVersion {
			continue
		}
		updates = append(updates, domain.UpdateRecord{
			Name:             rec.Name,
			InstalledVersion: rec.InstalledVersion,
			LatestVersion:    res.Version,
		})
	}
	return updates
}
