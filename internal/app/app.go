// Package app implements the application layer for pixi-outdated.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/benmoss/pixi-outdated/internal/engine/outdated"
	"go.trai.ch/zerr"
)

// DefaultManifest is the manifest looked for when none is given.
const DefaultManifest = "pixi.toml"

// Options carries the per-invocation settings parsed from the CLI.
type Options struct {
	// Manifest is the path to the pixi.toml manifest. Empty means the
	// manifest in the current directory.
	Manifest string
	// Environment selects the environment to check. Empty means default.
	Environment string
	// Platforms overrides the platform set read from the workspace.
	Platforms []string
	// Explicit restricts the check to explicitly requested dependencies.
	Explicit bool
	// JSON switches the output to the machine-readable renderer.
	JSON bool
	// Verbose enables debug logging.
	Verbose bool
	// Packages restricts the check to the named packages.
	Packages []string
}

// App orchestrates one check: resolve platforms, list each platform's
// packages, run the engine and render the result.
type App struct {
	lister    ports.PackageLister
	platforms ports.PlatformSource
	engine    *outdated.Engine
	logger    ports.Logger
	telemetry ports.Telemetry

	jsonRenderer  ports.ReportRenderer
	humanRenderer ports.ReportRenderer
	out           io.Writer
}

// New creates a new App instance.
func New(
	lister ports.PackageLister,
	platforms ports.PlatformSource,
	engine *outdated.Engine,
	logger ports.Logger,
	telemetry ports.Telemetry,
	jsonRenderer ports.ReportRenderer,
	humanRenderer ports.ReportRenderer,
) *App {
	return &App{
		lister:        lister,
		platforms:     platforms,
		engine:        engine,
		logger:        logger,
		telemetry:     telemetry,
		jsonRenderer:  jsonRenderer,
		humanRenderer: humanRenderer,
		out:           os.Stdout,
	}
}

// SetOutput redirects the report output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes one outdated check with the given options.
func (a *App) Run(ctx context.Context, opts Options) error {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(opts.Verbose)
	}
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Debug(fmt.Sprintf("failed to close telemetry: %v", err))
		}
	}()

	platforms, err := a.resolvePlatforms(opts)
	if err != nil {
		return err
	}

	platformPackages, checked := a.listPlatforms(ctx, platforms, opts)
	result := a.engine.Check(ctx, platformPackages, checked)

	renderer := a.humanRenderer
	if opts.JSON {
		renderer = a.jsonRenderer
	}
	return renderer.Render(a.out, result)
}

// resolvePlatforms returns the platforms to check: the explicit override when
// given, otherwise the workspace's platform set for the environment.
func (a *App) resolvePlatforms(opts Options) ([]string, error) {
	if len(opts.Platforms) > 0 {
		return opts.Platforms, nil
	}

	manifest := opts.Manifest
	if manifest == "" {
		manifest = DefaultManifest
	}
	platforms, err := a.platforms.Platforms(manifest, opts.Environment)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine platforms to check")
	}
	return platforms, nil
}

// listPlatforms lists every platform's packages. A platform whose listing
// fails is logged and dropped; the remaining platforms are still checked.
// Platforms that list successfully but yield no packages stay out of the
// update map while still counting as checked.
func (a *App) listPlatforms(ctx context.Context, platforms []string, opts Options) (map[string][]domain.PackageRecord, []string) {
	platformPackages := make(map[string][]domain.PackageRecord, len(platforms))
	checked := make([]string, 0, len(platforms))

	for _, platform := range platforms {
		records, err := a.lister.List(ctx, ports.ListOptions{
			Manifest:    opts.Manifest,
			Environment: opts.Environment,
			Platform:    platform,
			Explicit:    opts.Explicit,
			Names:       opts.Packages,
		})
		if err != nil {
			a.logger.Warn(fmt.Sprintf("skipping platform %s: %v", platform, err))
			continue
		}

		checked = append(checked, platform)
		if len(records) > 0 {
			platformPackages[platform] = records
		}
	}
	return platformPackages, checked
}
