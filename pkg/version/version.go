// Package version exposes the build version of the greenpath binary.
package version

// version is overridden at build time via
// -ldflags "-X github.com/greenpath-labs/greenpath/pkg/version.version=v1.2.3".
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
