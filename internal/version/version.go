// Package version holds the library version and normalization of version
// strings that carry build metadata from the release tooling.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the current version of the xtgeo dialog library.
const Version = "2.0.6"

// Normalize turns a version string with build metadata into a plain dotted
// form, e.g. "1.5.12+2.g191571d.dirty" becomes "1.5.12.2.dev0". A clean
// three-part version is returned unchanged. Returns "UNSET" when the input
// is not a version at all.
func Normalize(v string) string {
	if _, err := semver.NewVersion(v); err != nil {
		return "UNSET"
	}

	parts := strings.Split(v, ".")
	if len(parts) <= 3 {
		return v
	}

	bug := strings.ReplaceAll(parts[2], "+", ".")
	ext := ""
	if strings.Contains(v, "dirty") {
		ext = ".dev0"
	}
	return parts[0] + "." + parts[1] + "." + bug + ext
}

// IsRelease reports whether v parses as a strict three-part semantic
// version with no pre-release or build metadata.
func IsRelease(v string) bool {
	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == "" && sv.Metadata() == ""
}
