// Package version exposes the build metadata stamped into the fieldstore
// binary.
package version

// Overridden via -ldflags at release build time; the defaults identify a
// development build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
