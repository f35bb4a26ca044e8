// Package version exposes the CLI version string.
package version

// Version is set at build time via -ldflags.
var Version = "dev"

// String returns the full version line printed by --version.
func String() string {
	return "cmakecheck " + Version
}
