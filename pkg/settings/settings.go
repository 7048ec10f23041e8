// Package settings provides build metadata and per-invocation runtime
// configuration shared across the gridforge CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "gridforge"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single CLI invocation: logging
// verbosity and output color policy. It is threaded through context so
// deep call sites (the render command's warning path, stream-demo's
// progress line) can read it
// without a parameter on every function.
type Run struct {
	MinLogLevel int8
	Quiet       bool
	NoColor     bool
}

// NewCliParams returns the default Run settings for a CLI invocation.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Quiet:       false,
		NoColor:     false,
	}
}
