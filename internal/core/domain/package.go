// Package domain contains the pure value types for the outdated-dependency
// check: package records, deduplication identities, the version cache entries,
// and the report structures.
package domain

// Ecosystem identifies the package-source family a record belongs to.
type Ecosystem string

const (
	// EcosystemConda is the channel-based conda binary ecosystem.
	EcosystemConda Ecosystem = "conda"
	// EcosystemPypi is the Python package index ecosystem.
	EcosystemPypi Ecosystem = "pypi"
)

// PackageRecord is one installed package as reported by the package lister
// for a single platform. Records are immutable once produced.
type PackageRecord struct {
	// Name is the package name, unique within an ecosystem on one platform.
	Name string

	// InstalledVersion is the currently locked version string.
	InstalledVersion string

	// Build is the conda build string, when known.
	Build string

	// SizeBytes is the package size, when known.
	SizeBytes uint64

	// Ecosystem is the package-source family of the record.
	Ecosystem Ecosystem

	// Source is the raw download location reported by pixi, when known.
	Source string

	// Origin is the channel base derived from Source for conda records.
	// Empty when no channel could be derived, and always empty for pypi
	// records.
	Origin string

	// Explicit reports whether the package is listed in the manifest rather
	// than pulled in transitively.
	Explicit bool
}
