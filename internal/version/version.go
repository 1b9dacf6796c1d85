// Package version holds build metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/kenchou/file-clean/internal/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build metadata for "fileclean version"
func String() string {
	return fmt.Sprintf("fileclean %s (commit %s, built %s)", Version, Commit, Date)
}
