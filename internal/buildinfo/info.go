// Package buildinfo holds release metadata injected at link time:
//
//	go build -ldflags "-X github.com/finansije-dev/finansije/internal/buildinfo.Version=v1.0.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the metadata for --version output.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
