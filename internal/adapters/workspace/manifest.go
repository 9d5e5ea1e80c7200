// Package workspace reads the pixi project files: the pixi.toml manifest and
// the pixi.lock lockfile next to it.
package workspace

import (
	"os"

	"github.com/BurntSushi/toml"
	"go.trai.ch/zerr"
)

// Manifest is the subset of a pixi.toml document the checker needs.
type Manifest struct {
	Project          ProjectMetadata   `toml:"project"`
	Dependencies     map[string]string `toml:"dependencies"`
	PypiDependencies map[string]string `toml:"pypi-dependencies"`
}

// ProjectMetadata carries the project block of the manifest.
type ProjectMetadata struct {
	Name      string   `toml:"name"`
	Channels  []string `toml:"channels"`
	Platforms []string `toml:"platforms"`
}

// LoadManifest parses the manifest at the given path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var manifest Manifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}
	return &manifest, nil
}
