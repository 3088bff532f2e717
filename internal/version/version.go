// Package version holds build-time metadata injected via ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// These variables are set at build time using -ldflags:
//
//	-X 'github.com/janekbaraniewski/screenings/internal/version.Version=...'
//	-X 'github.com/janekbaraniewski/screenings/internal/version.CommitHash=...'
//	-X 'github.com/janekbaraniewski/screenings/internal/version.BuildDate=...'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Version + " (" + CommitHash + ") built " + BuildDate
}

// Canonical returns the version as a canonical stable semver ("v1.2.0"),
// or "" for development, pre-release and build-tagged versions.
func Canonical(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Prerelease(v) != "" || semver.Build(v) != "" {
		return ""
	}
	return semver.Canonical(v)
}

// IsRelease reports whether the running binary was built from a release tag.
func IsRelease() bool {
	return Canonical(Version) != ""
}
