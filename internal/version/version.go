// Package version exposes build metadata stamped at link time.
package version

//nolint:revive // Overwritten by -ldflags "-X" at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
