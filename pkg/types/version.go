package types

import "fmt"

// ============================================================================
// Override Sentinels
// ============================================================================

const (
	// Unchanged keeps the parsed value of a major, minor, or revision component.
	// Any negative request is treated the same way.
	Unchanged = -1

	// AutoIncrement replaces the build component with the parsed build plus one.
	// It is the default build request.
	AutoIncrement = -1

	// KeepBuild keeps the parsed build component. It is only meaningful for the
	// build field; major, minor, and revision treat it as Unchanged.
	KeepBuild = -2
)

// VersionFormat is the canonical textual form written back into a resource
// script: decimal, no leading zeros, comma plus single space separators.
const VersionFormat = "%d, %d, %d, %d"

// Version is a four-part resource version tuple.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// String returns the canonical "major, minor, build, revision" form.
func (v Version) String() string {
	return fmt.Sprintf(VersionFormat, v.Major, v.Minor, v.Build, v.Revision)
}

// Request carries the caller supplied overrides for one update run.
// It is built once per invocation and is read-only during a scan.
type Request struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// DefaultRequest leaves major, minor, and revision alone and increments the build.
func DefaultRequest() Request {
	return Request{
		Major:    Unchanged,
		Minor:    Unchanged,
		Build:    AutoIncrement,
		Revision: Unchanged,
	}
}

// Apply computes the new version for one occurrence from its parsed value.
//
// Major, minor, and revision keep the parsed value when the request is
// negative. Build is incremented whenever its request is negative, regardless
// of the other three fields, except for KeepBuild which keeps it as parsed.
func (r Request) Apply(parsed Version) Version {
	out := Version{
		Major:    pick(r.Major, parsed.Major),
		Minor:    pick(r.Minor, parsed.Minor),
		Revision: pick(r.Revision, parsed.Revision),
	}
	switch {
	case r.Build == KeepBuild:
		out.Build = parsed.Build
	case r.Build < 0:
		out.Build = parsed.Build + 1
	default:
		out.Build = r.Build
	}
	return out
}

// Explicit reports whether every field carries a concrete override, which
// makes repeated runs idempotent.
func (r Request) Explicit() bool {
	return r.Major >= 0 && r.Minor >= 0 && r.Build >= 0 && r.Revision >= 0
}

func pick(requested, parsed int) int {
	if requested < 0 {
		return parsed
	}
	return requested
}
