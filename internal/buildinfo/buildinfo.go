// Package buildinfo reports the version the running binary was built from.
package buildinfo

import "runtime/debug"

// Set at build time via -ldflags "-X grader/internal/buildinfo.version=...".
var (
	version = "" //nolint: gochecknoglobals
	commit  = "" //nolint: gochecknoglobals
)

// Version returns the ldflags version, then the module version recorded by
// the toolchain, then "(devel)".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

// Commit returns the short VCS revision, or "unknown".
func Commit() string {
	if commit != "" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				if len(setting.Value) > 7 {
					return setting.Value[:7]
				}

				return setting.Value
			}
		}
	}

	return "unknown"
}

// String renders "<version> (<commit>)".
func String() string {
	return Version() + " (" + Commit() + ")"
}
