// Package buildinfo exposes version metadata stamped at build time.
package buildinfo

// Populated via -ldflags "-X github.com/nairabooks/nairabooks/internal/buildinfo.Version=..."
// and friends by the release build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
