// Package version provides build-time version information for the tooling.
package version

import "fmt"

var (
	// Version is the release version (e.g., git tag or "dev")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "dev"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String renders the build information on one line
func String() string {
	return fmt.Sprintf("wordacy %s (commit %s, built %s)", Version, Commit, BuildTime)
}
