package domain

// Identity is the deduplication key for a package across platforms.
// It is a comparable value type usable directly as a map key. Equality is
// structural over all three fields and independent of which platform
// produced the record, so two occurrences of the same dependency on
// different platforms collapse to one lookup.
type Identity struct {
	Name      string
	Origin    string
	Ecosystem Ecosystem
}

// IdentityOf derives the identity of a package record. It is total: an
// absent origin is represented by the zero string, not treated as an error.
func IdentityOf(rec PackageRecord) Identity {
	return Identity{
		Name:      rec.Name,
		Origin:    rec.Origin,
		Ecosystem: rec.Ecosystem,
	}
}

// QueryPlan maps each distinct identity that needs a remote lookup to the
// first installed version observed for it. The stored version is
// informational only; the diff phase always re-reads the installed version
// from the platform-specific record.
type QueryPlan map[Identity]string
