package model

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// versionPattern gates version strings before semver parsing. Release
// versions are plain X.Y.Z: no "v" prefix, no pre-release or build metadata.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ParseVersion parses a strict X.Y.Z version string.
func ParseVersion(s string) (*semver.Version, error) {
	if !versionPattern.MatchString(s) {
		return nil, goerr.New("invalid version format, expected X.Y.Z",
			goerr.V("version", s),
			goerr.T(types.ErrTagUsage),
		)
	}

	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid version",
			goerr.V("version", s),
			goerr.T(types.ErrTagUsage),
		)
	}
	return v, nil
}

// BumpKind selects which version component to increment.
type BumpKind string

const (
	BumpNone  BumpKind = ""
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

// ParseBumpKind validates a --bump flag value.
func ParseBumpKind(s string) (BumpKind, error) {
	switch BumpKind(s) {
	case BumpNone, BumpMajor, BumpMinor, BumpPatch:
		return BumpKind(s), nil
	default:
		return BumpNone, goerr.New("unknown bump kind, expected major, minor or patch",
			goerr.V("bump", s),
			goerr.T(types.ErrTagUsage),
		)
	}
}

// Bump returns the version produced by incrementing one component of
// current. Lower components reset to zero, matching semver increment rules.
func Bump(current *semver.Version, kind BumpKind) (*semver.Version, error) {
	var next semver.Version
	switch kind {
	case BumpMajor:
		next = current.IncMajor()
	case BumpMinor:
		next = current.IncMinor()
	case BumpPatch:
		next = current.IncPatch()
	default:
		return nil, goerr.New("unknown bump kind",
			goerr.V("bump", string(kind)),
			goerr.T(types.ErrTagUsage),
		)
	}
	return &next, nil
}
