// Package version carries build metadata.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags at build time.
var (
	Version = ""
	Commit  = ""
)

// String returns the version, falling back to the module version recorded
// by the Go toolchain and finally to "dev".
func String() string {
	if Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

func Info() string {
	commit := Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("ytworth %s (commit %s, %s)", String(), commit, runtime.Version())
}
