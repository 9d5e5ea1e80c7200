package domain

// UpdateRecord describes one available update for a package on a platform.
// It is produced only when the resolved latest version differs from the
// installed version by exact string inequality.
type UpdateRecord struct {
	Name             string `json:"name"`
	InstalledVersion string `json:"installedVersion"`
	LatestVersion    string `json:"latestVersion"`
}

// PlatformUpdates maps a platform name to its ordered update records.
// Platforms that were listed but are fully up to date keep an empty entry;
// platforms that failed listing or produced no packages are absent.
type PlatformUpdates map[string][]UpdateRecord

// CoalescedReport partitions update records into those shared verbatim by
// every platform present in the update map and the platform-specific
// remainder. Common is non-empty only when more than one platform was
// checked. For every platform, Common plus the platform's PerPlatform entry
// reconstructs exactly its original update list, and no record appears in
// both.
type CoalescedReport struct {
	Common      []UpdateRecord  `json:"common"`
	PerPlatform PlatformUpdates `json:"perPlatform"`
}

// LookupWarning surfaces one failed identity lookup for user-visible
// reporting. Warnings never produce update records and are suppressed in
// machine-readable output.
type LookupWarning struct {
	Identity Identity
	Err      error
}

// CheckResult is the complete outcome of one outdated check.
type CheckResult struct {
	// Checked is the ordered list of platforms that produced a package
	// listing.
	Checked []string

	// Updates is the full uncoalesced per-platform view, for machine-readable
	// sinks.
	Updates PlatformUpdates

	// Report is the coalesced partition, for human-oriented sinks.
	Report CoalescedReport

	// Warnings lists identities whose lookup failed, sorted by name.
	Warnings []LookupWarning
}
