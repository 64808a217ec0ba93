package usecase

import (
	"github.com/Masterminds/semver/v3"
	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ResolveVersion computes the target release version from the request. Pure:
// no I/O beyond the already-read current version. Supplying both an explicit
// version and a bump kind is rejected instead of picking a precedence.
func ResolveVersion(current *semver.Version, req *model.ReleaseRequest) (*semver.Version, error) {
	switch {
	case req.ExplicitVersion != "" && req.Bump != model.BumpNone:
		return nil, goerr.New("specify either a version or --bump, not both",
			goerr.V("version", req.ExplicitVersion),
			goerr.V("bump", string(req.Bump)),
			goerr.T(types.ErrTagUsage),
		)

	case req.ExplicitVersion != "":
		return model.ParseVersion(req.ExplicitVersion)

	case req.Bump != model.BumpNone:
		return model.Bump(current, req.Bump)

	default:
		return nil, goerr.New("no version specified, pass a version or --bump",
			goerr.T(types.ErrTagUsage),
		)
	}
}
