package outdated

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
)

// Engine runs the full plan, query, diff and coalesce pipeline once per
// invocation. Every stage is a pure transformation over immutable inputs;
// nothing persists across runs.
type Engine struct {
	resolver *Resolver
}

// New creates an Engine on top of the given resolver.
func New(resolver *Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Check determines the available updates for the given per-platform package
// listings. checked is the ordered list of platforms that produced a
// listing; it drives the single-platform passthrough decision and the
// platform set handed to the conda oracle.
func (e *Engine) Check(ctx context.Context, platformPackages map[string][]domain.PackageRecord, checked []string) domain.CheckResult {
	plan := Plan(platformPackages)
	cache := e.resolver.Resolve(ctx, plan, checked)

	updates := make(domain.PlatformUpdates, len(platformPackages))
	for platform, records := range platformPackages {
		updates[platform] = Diff(records, cache)
	}

	return domain.CheckResult{
		Checked:  checked,
		Updates:  updates,
		Report:   Coalesce(updates, checked),
		Warnings: cache.Warnings(),
	}
}
