package ports

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks

// CondaOracle resolves the latest available version of a conda identity.
//
// The full set of checked platforms is passed in a single call per identity
// so the implementation can decide whether to batch the remote work or issue
// one request per platform. Retry and timeout policy belong to the
// implementation, not the caller.
type CondaOracle interface {
	// LatestVersion returns the newest version available for id across the
	// given platforms. found is false when the channels carry no entry for
	// the package.
	LatestVersion(ctx context.Context, id domain.Identity, platforms []string) (version string, found bool, err error)
}

// PypiOracle resolves the latest published version of a PyPI identity.
// Lookups are platform-independent.
type PypiOracle interface {
	// LatestVersion returns the newest version published on the index.
	LatestVersion(ctx context.Context, id domain.Identity) (string, error)
}
