// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Resolved returns Version, falling back to the module version recorded by
// `go install` when no ldflags were given.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return Version
	}
	return info.Main.Version
}

// String formats the full version line.
func String() string {
	return fmt.Sprintf("vocab version %s (commit: %s, built: %s)", Resolved(), Commit, Date)
}
