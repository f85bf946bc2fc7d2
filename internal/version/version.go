// Package version provides build-time metadata for the CLI application.
//
// Variables default to development values and are overridden at build time
// using -ldflags:
//
//	go build -ldflags "\
//	  -X 'github.com/slashdevops/hwaddr/internal/version.Version=1.0.0' \
//	  -X 'github.com/slashdevops/hwaddr/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// devVersion is the Version of binaries built without -ldflags.
const devVersion = "0.0.0"

var (
	// Version is the release version
	Version = devVersion

	// BuildDate is the date the binary was built
	BuildDate = "1970-01-01T00:00:00Z"

	// GitCommit is the commit hash the binary was built from
	GitCommit = ""

	// GitBranch is the branch the binary was built from
	GitBranch = ""

	// BuildUser is the user that built the binary
	BuildUser = ""

	// GoVersion is the Go toolchain version
	GoVersion = runtime.Version()
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short returns Version, or the module version recorded by `go install`
// when no version was injected.
func Short() string {
	if Version == devVersion {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return Version
}

// Long returns a single line describing the build of app.
func Long(app string) string {
	var sb strings.Builder

	if Version == devVersion {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" {
			fmt.Fprintf(&sb, "%s version: %s, ", app, info.Main.Version)
			fmt.Fprintf(&sb, "Git commit: %s, ", info.Main.Sum)
			fmt.Fprintf(&sb, "Go version: %s\n", info.GoVersion)

			return sb.String()
		}
	}

	fmt.Fprintf(&sb, "%s version: %s, ", app, Version)
	fmt.Fprintf(&sb, "Build date: %s, ", BuildDate)
	fmt.Fprintf(&sb, "Build user: %s, ", BuildUser)
	fmt.Fprintf(&sb, "Git commit: %s, ", GitCommit)
	fmt.Fprintf(&sb, "Git branch: %s, ", GitBranch)
	fmt.Fprintf(&sb, "Go version: %s\n", GoVersion)

	return sb.String()
}
