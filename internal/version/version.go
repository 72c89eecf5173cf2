// Package version holds build metadata injected at link time.
package version

// Set via -ldflags at build time, e.g.:
//
//	go build -ldflags "-X github.com/sysglance/sysglance/internal/version.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
