// Package ports defines the collaborator interfaces for the application.
package ports

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks

// ListOptions narrows what the lister reports for one platform.
type ListOptions struct {
	// Manifest is the path to the project manifest (pixi.toml).
	Manifest string

	// Environment selects a named environment; empty means the default.
	Environment string

	// Platform is the target platform to list packages for.
	Platform string

	// Explicit restricts the listing to packages declared in the manifest.
	Explicit bool

	// Names restricts the listing to the given package names (exact match).
	Names []string
}

// PackageLister enumerates the installed packages for one platform.
type PackageLister interface {
	// List returns the installed packages for the platform in opts.
	// A per-platform failure removes that platform from consideration
	// without aborting the run.
	List(ctx context.Context, opts ListOptions) ([]domain.PackageRecord, error)
}
