// Package numfield provides numeric text-input fields for Bubble Tea
// programs. The field component lives in package field; formatting rules
// live in package numfmt.
package numfield

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semverRE captures major, minor and patch; pre-release and build suffixes
// are allowed but not captured.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version is the module version without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// ParseVersion splits a SemVer 2.0.0 string into its numeric core.
func ParseVersion(v string) (major, minor, patch int, err error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return 0, 0, 0, fmt.Errorf("invalid semver %q", v)
	}
	// The pattern only admits decimal digits.
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	patch, _ = strconv.Atoi(m[3])
	return major, minor, patch, nil
}
