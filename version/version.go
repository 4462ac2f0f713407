// Package version holds build metadata injected at link time.
package version

import "runtime"

// Populated via -ldflags at release build time. Defaults cover `go build`
// and `go run` during development.
var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
	GoInfo        = runtime.Version()
)
