package outdated

import (
	"context"
	"fmt"
	"runtime"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Resolver executes a query plan against the ecosystem oracles, issuing at
// most one lookup per distinct identity. Lookups for different identities
// are independent and I/O-bound, so they run on a bounded worker pool.
type Resolver struct {
	conda     ports.CondaOracle
	pypi      ports.PypiOracle
	logger    ports.Logger
	telemetry ports.Telemetry
	workers   int
}

// NewResolver creates a Resolver. workers bounds the number of concurrent
// lookups; values below one default to the number of CPUs.
func NewResolver(
	conda ports.CondaOracle,
	pypi ports.PypiOracle,
	logger ports.Logger,
	telemetry ports.Telemetry,
	workers int,
) *Resolver {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Resolver{
		conda:     conda,
		pypi:      pypi,
		logger:    logger,
		telemetry: telemetry,
		workers:   workers,
	}
}

// Resolve looks up every identity in the plan and returns the populated
// cache. A single identity's failure is recorded as a failed entry and never
// aborts the remaining queries. When ctx is cancelled, in-flight lookups are
// abandoned and the cache is returned partially populated; unresolved
// identities simply have no entry.
func (r *Resolver) Resolve(ctx context.Context, plan domain.QueryPlan, platforms []string) *Cache {
	cache := NewCache()

	// Deliberately not errgroup.WithContext: one lookup failing must not
	// cancel its siblings. Failures land in the cache, not in the group.
	var g errgroup.Group
	g.SetLimit(r.workers)

	for id := range plan {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			cache.put(id, r.lookup(ctx, id, platforms))
			return nil
		})
	}

	_ = g.Wait()
	return cache
}

func (r *Resolver) lookup(ctx context.Context, id domain.Identity, platforms []string) domain.VersionResult {
	ctx, vertex := r.telemetry.Record(ctx, fmt.Sprintf("%s: %s", id.Ecosystem, id.Name))

	res := r.lookupEcosystem(ctx, id, platforms)
	vertex.Complete(res.Err)

	if res.State == domain.VersionFailed {
		r.logger.Debug(fmt.Sprintf("lookup failed for %s (%s): %v", id.Name, id.Ecosystem, res.Err))
	}
	return res
}

func (r *Resolver) lookupEcosystem(ctx context.Context, id domain.Identity, platforms []string) domain.VersionResult {
	switch id.Ecosystem {
	case domain.EcosystemConda:
		// The oracle receives the full platform set in one logical call so
		// it can batch the remote work as it sees fit.
		version, found, err := r.conda.LatestVersion(ctx, id, platforms)
		switch {
		case err != nil:
			return domain.FailedLookup(err)
		case !found:
			return domain.NoVersion()
		default:
			return domain.FoundVersion(version)
		}
	case domain.EcosystemPypi:
		version, err := r.pypi.LatestVersion(ctx, id)
		if err != nil {
			return domain.FailedLookup(err)
		}
		return domain.FoundVersion(version)
	default:
		return domain.FailedLookup(domain.ErrUnknownEcosystem)
	}
}
