// Package version provides version information for the uvforge CLI.
package version

import (
	"fmt"
	"runtime"

	"github.com/uvforge/cli/internal/uvtool"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("uvforge:\n  Version:  %s\n  Build ID: %s/%s",
		i.Version, i.BuildDate, i.GitCommit)
}

// FullVersionString returns complete version information including the
// detected uv binary.
func FullVersionString(info Info, uvInfo uvtool.BinaryInfo) string {
	return fmt.Sprintf("%s\n\nuv:\n%s", info.String(), uvInfo.String())
}
