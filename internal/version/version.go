// Package version holds build metadata for rolodex. Values are overridden at
// build time with -ldflags "-X github.com/cristianoliveira/rolodex/internal/version.Version=...".
package version

import "fmt"

// Version is the release version.
var Version = "development"

// Commit is the git commit hash.
var Commit = "unknown"

// String returns the full version string including the commit hash if available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// Banner returns the line printed by the version command.
func Banner() string {
	return fmt.Sprintf("rolodex %s", String())
}
