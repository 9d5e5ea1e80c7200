package outdated

import (
	"sort"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
)

// Coalesce partitions per-platform update records into those shared verbatim
// by every platform present in the update map and the platform-specific
// remainder.
//
// Single-platform runs pass through untouched. For multi-platform runs the
// reference platform is the first present platform in sorted name order, so
// the output is stable for a given input. A record is common iff its
// (name, installed, latest) triple appears on every platform that actually
// produced an update list; platforms absent from the map (failed listing or
// no packages) do not participate in the intersection.
func Coalesce(updates domain.PlatformUpdates, checked []string) domain.CoalescedReport {
	if len(checked) <= 1 {
		return domain.CoalescedReport{PerPlatform: updates}
	}

	present := make([]string, 0, len(updates))
	for platform := range updates {
		present = append(present, platform)
	}
	sort.Strings(present)

	if len(present) == 0 {
		return domain.CoalescedReport{PerPlatform: domain.PlatformUpdates{}}
	}

	// Count, per update triple, how many of the present platforms carry it.
	// Each platform contributes at most once per triple. Comparing the count
	// against the number of present platforms replaces the quadratic
	// does-every-platform-contain-it scan.
	occurrences := make(map[domain.UpdateRecord]int)
	for _, platform := range present {
		seen := make(map[domain.UpdateRecord]struct{}, len(updates[platform]))
		for _, u := range updates[platform] {
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			occurrences[u]++
		}
	}

	reference := present[0]
	common := make([]domain.UpdateRecord, 0)
	commonSet := make(map[domain.UpdateRecord]struct{})
	for _, u := range updates[reference] {
		if occurrences[u] != len(present) {
			continue
		}
		if _, dup := commonSet[u]; dup {
			continue
		}
		commonSet[u] = struct{}{}
		common = append(common, u)
	}

	perPlatform := make(domain.PlatformUpdates, len(present))
	for _, platform := range present {
		var rest []domain.UpdateRecord
		for _, u := range updates[platform] {
			if _, isCommon := commonSet[u]; isCommon {
				continue
			}
			rest = append(rest, u)
		}
		if len(rest) > 0 {
			perPlatform[platform] = rest
		}
	}

	return domain.CoalescedReport{Common: common, PerPlatform: perPlatform}
}
