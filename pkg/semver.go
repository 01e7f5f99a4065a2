package syncver

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
)

// semverPattern is the official semver.org grammar, anchored on both ends.
// It does NOT accept a "v" prefix.
const semverPattern = `^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`

var semverRe = regexp.MustCompile(semverPattern)

// ErrInvalidVersion is matched by every *InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid semver version")

// InvalidVersionError reports a version string rejected by ValidateVersion.
type InvalidVersionError struct {
	Version string
}

// Error returns the message shown to the user for a rejected version.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("The version: '%s' is not a valid SemVer version.", e.Version)
}

// Is reports whether target is ErrInvalidVersion.
func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// IsValidVersion reports whether v matches the SemVer grammar exactly.
func IsValidVersion(v string) bool {
	return semverRe.MatchString(v)
}

// ValidateVersion returns an *InvalidVersionError when v is not valid SemVer.
func ValidateVersion(v string) error {
	if !IsValidVersion(v) {
		return &InvalidVersionError{Version: v}
	}
	return nil
}

// Direction describes how a new version relates to the old one.
type Direction string

const (
	Upgrade   Direction = "upgrade"   // New version has higher precedence.
	Downgrade Direction = "downgrade" // New version has lower precedence.
	Unchanged Direction = "unchanged" // Same precedence; build metadata may differ.
)

// compareVersions orders two validated versions by SemVer precedence.
// Build metadata is ignored, so "1.0.0+a" and "1.0.0+b" are Unchanged.
// An old value that is not valid SemVer always yields Upgrade.
func compareVersions(oldVersion, newVersion string) Direction {
	o, n := "v"+oldVersion, "v"+newVersion
	if !semver.IsValid(o) {
		return Upgrade
	}
	switch semver.Compare(o, n) {
	case -1:
		return Upgrade
	case 1:
		return Downgrade
	default:
		return Unchanged
	}
}
