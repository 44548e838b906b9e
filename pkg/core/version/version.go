// Package version holds the build metadata of numcore. The variables are
// set at link time:
//
//	go build -ldflags "-X github.com/msto63/numcore/pkg/core/version.Version=1.2.3"
package version

import (
	"fmt"
	"runtime"
)

// Build metadata
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build metadata together with the Go runtime details
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the one-line form, e.g. "numcore v0.1.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("numcore v%s (%s)", i.Version, i.GitCommit)
}
