package domain

// VersionState describes the outcome of a single version lookup.
type VersionState int

const (
	// VersionFound means the oracle resolved a latest available version.
	VersionFound VersionState = iota
	// VersionNotFound means the oracle reported no version for the identity.
	VersionNotFound
	// VersionFailed means the lookup failed.
	VersionFailed
)

// VersionResult is one version-cache entry. It is written exactly once per
// identity during the query phase and never mutated afterwards.
type VersionResult struct {
	State   VersionState
	Version string
	Err     error
}

// FoundVersion returns a successful lookup result carrying a version.
func FoundVersion(version string) VersionResult {
	return VersionResult{State: VersionFound, Version: version}
}

// NoVersion returns a successful lookup result carrying no version.
func NoVersion() VersionResult {
	return VersionResult{State: VersionNotFound}
}

// FailedLookup returns a failed lookup result carrying the failure.
func FailedLookup(err error) VersionResult {
	return VersionResult{State: VersionFailed, Err: err}
}
