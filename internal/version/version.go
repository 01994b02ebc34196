// Package version reports build metadata stamped in via ldflags.
package version

import "fmt"

// Name is the command name.
const Name = "svcscaffold"

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string (commit-hash based, no semver)
func String() string {
	return fmt.Sprintf("%s dev (commit: %s, built: %s)", Name, ShortCommit(), BuildTime)
}

// ShortCommit returns Commit cut to seven characters.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
