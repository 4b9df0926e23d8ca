// Package version reports the build version of the sasseval binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags:
//
//	-X bennypowers.dev/sasseval/internal/version.Version=v0.1.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the ldflags version, else the module version recorded
// by go install, else "dev".
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// GetFullVersion appends the commit and build time when they are known.
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" {
		v = fmt.Sprintf("%s (commit: %s)", v, GitCommit)
	}
	if BuildTime != "unknown" {
		v = fmt.Sprintf("%s built %s", v, BuildTime)
	}
	return v
}
