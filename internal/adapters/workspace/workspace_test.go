package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benmoss/pixi-outdated/internal/adapters/workspace"
	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestFixture = `[project]
name = "demo"
channels = ["conda-forge"]
platforms = ["win-64", "linux-64"]

[dependencies]
numpy = ">=1.26"

[pypi-dependencies]
requests = ">=2.31"
`

const lockfileFixture = `version: 6
environments:
  default:
    channels:
      - url: https://conda.anaconda.org/conda-forge/
    packages:
      linux-64:
        - conda: https://conda.anaconda.org/conda-forge/linux-64/numpy-1.26.0-py312_0.conda
      osx-arm64:
        - conda: https://conda.anaconda.org/conda-forge/osx-arm64/numpy-1.26.0-py312_0.conda
  lint:
    packages: {}
`

func writeWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoadManifest(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{"pixi.toml": manifestFixture})

	manifest, err := workspace.LoadManifest(filepath.Join(dir, "pixi.toml"))

	require.NoError(t, err)
	assert.Equal(t, "demo", manifest.Project.Name)
	assert.Equal(t, []string{"conda-forge"}, manifest.Project.Channels)
	assert.Contains(t, manifest.Dependencies, "numpy")
	assert.Contains(t, manifest.PypiDependencies, "requests")
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := workspace.LoadManifest(filepath.Join(t.TempDir(), "pixi.toml"))
	assert.Error(t, err)
}

func TestSource_Platforms_FromLockfile(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"pixi.toml": manifestFixture,
		"pixi.lock": lockfileFixture,
	})

	platforms, err := workspace.NewSource().Platforms(filepath.Join(dir, "pixi.toml"), "")

	require.NoError(t, err)
	assert.Equal(t, []string{"linux-64", "osx-arm64"}, platforms)
}

func TestSource_Platforms_UnknownEnvironment(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"pixi.toml": manifestFixture,
		"pixi.lock": lockfileFixture,
	})

	_, err := workspace.NewSource().Platforms(filepath.Join(dir, "pixi.toml"), "prod")

	assert.ErrorIs(t, err, domain.ErrEnvironmentNotFound)
}

func TestSource_Platforms_EnvironmentWithoutPlatforms(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"pixi.toml": manifestFixture,
		"pixi.lock": lockfileFixture,
	})

	_, err := workspace.NewSource().Platforms(filepath.Join(dir, "pixi.toml"), "lint")

	assert.ErrorIs(t, err, domain.ErrNoPlatforms)
}

func TestSource_Platforms_ManifestFallback(t *testing.T) {
	// No lockfile next to the manifest: the manifest's own platform list is
	// used, sorted.
	dir := writeWorkspace(t, map[string]string{"pixi.toml": manifestFixture})

	platforms, err := workspace.NewSource().Platforms(filepath.Join(dir, "pixi.toml"), "")

	require.NoError(t, err)
	assert.Equal(t, []string{"linux-64", "win-64"}, platforms)
}

func TestSource_Platforms_NothingToFallBackOn(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{"pixi.toml": "[project]\nname = \"empty\"\n"})

	_, err := workspace.NewSource().Platforms(filepath.Join(dir, "pixi.toml"), "")

	assert.ErrorIs(t, err, domain.ErrNoPlatforms)
}
