// Package outdated implements the update-detection and cross-platform
// coalescing engine: it turns per-platform package listings and the
// ecosystem version oracles into a deduplicated query plan, a write-once
// version cache, per-platform diffs, and a coalesced report.
package outdated

import (
	"sort"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
)

// Plan collects, across all platforms, the distinct identities that need a
// remote version lookup. The first occurrence of an identity wins; later
// occurrences are dropped from the plan but are revisited by the diff phase.
//
// Platforms are visited in sorted name order so the installed version stored
// for an identity is deterministic for a given input. Conda records without
// a derivable origin are excluded: no lookup is ever attempted for them.
func Plan(platformPackages map[string][]domain.PackageRecord) domain.QueryPlan {
	platforms := make([]string, 0, len(platformPackages))
	for platform := range platformPackages {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	plan := make(domain.QueryPlan)
	for _, platform := range platforms {
		for _, rec := range platformPackages[platform] {
			if rec.Ecosystem == domain.EcosystemConda && rec.Origin == "" {
				continue
			}
			id := domain.IdentityOf(rec)
			if _, seen := plan[id]; seen {
				continue
			}
			plan[id] = rec.InstalledVersion
		}
	}
	return plan
}
