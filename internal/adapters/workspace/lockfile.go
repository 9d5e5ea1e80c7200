package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultEnvironment is the environment used when none is requested.
const DefaultEnvironment = "default"

// lockfileName is the lockfile expected next to the manifest.
const lockfileName = "pixi.lock"

// lockfileDTO mirrors the subset of a pixi.lock document we read. An
// environment's platforms are the keys of its packages map.
type lockfileDTO struct {
	Version      int                       `yaml:"version"`
	Environments map[string]environmentDTO `yaml:"environments"`
}

type environmentDTO struct {
	Channels []channelDTO           `yaml:"channels"`
	Indexes  []string               `yaml:"indexes"`
	Packages map[string][]yaml.Node `yaml:"packages"`
}

type channelDTO struct {
	URL string `yaml:"url"`
}

// Source resolves platforms from the workspace files. It implements
// ports.PlatformSource.
type Source struct{}

// NewSource creates a workspace platform source.
func NewSource() *Source {
	return &Source{}
}

// Platforms returns the platforms of the given environment, read from the
// lockfile next to the manifest. When the lockfile does not exist, the
// manifest's own platform list is used instead. The result is sorted for
// deterministic checking order.
func (s *Source) Platforms(manifestPath, environment string) ([]string, error) {
	if environment == "" {
		environment = DefaultEnvironment
	}

	lockPath := filepath.Join(filepath.Dir(manifestPath), lockfileName)
	data, err := os.ReadFile(lockPath) //nolint:gosec // path is derived from the user's manifest
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return manifestPlatforms(manifestPath, environment)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", lockPath)
	}

	var lock lockfileDTO
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lockfile"), "path", lockPath)
	}

	env, ok := lock.Environments[environment]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnvironmentNotFound, ""), "environment", environment)
	}

	platforms := make([]string, 0, len(env.Packages))
	for platform := range env.Packages {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	if len(platforms) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoPlatforms, ""), "environment", environment)
	}
	return platforms, nil
}

// manifestPlatforms is the fallback for workspaces that were never locked.
func manifestPlatforms(manifestPath, environment string) ([]string, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	if len(manifest.Project.Platforms) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoPlatforms, ""), "environment", environment)
	}
	platforms := append([]string{}, manifest.Project.Platforms...)
	sort.Strings(platforms)
	return platforms, nil
}
