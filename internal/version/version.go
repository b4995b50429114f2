// Package version exposes build metadata for the About dialog and logs.
package version

// Populated via -ldflags at release build time; defaults apply to dev builds.
var (
	// Version is the semantic release version.
	Version = "0.1.0"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// GitCommit is the source revision the binary was built from.
	GitCommit = "unknown"
)
