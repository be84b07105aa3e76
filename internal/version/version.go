// Package version holds build metadata.
package version

// Overridden at link time, e.g.
// -ldflags "-X github.com/bistroboss/bistro-api/internal/version.Version=1.2.0".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
