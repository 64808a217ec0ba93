package ghcli

import (
	"context"

	"github.com/epdisplay/release/pkg/domain/interfaces"
	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/epdisplay/release/pkg/utils/cmdx"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	dir string
}

// New creates a ReleaseClient backed by the gh executable. gh resolves the
// repository from the working directory's git remotes, so no coordinates are
// needed here.
func New() interfaces.ReleaseClient {
	return &client{}
}

func (c *client) CreateRelease(ctx context.Context, draft *model.ReleaseDraft) error {
	args := []string{
		"release", "create", draft.Tag,
		draft.AssetPath,
		"--title", draft.Title,
		"--notes", draft.Notes,
	}
	if draft.Latest {
		args = append(args, "--latest")
	}

	if _, err := cmdx.Run(ctx, c.dir, "gh", args...); err != nil {
		return goerr.Wrap(err, "gh release create failed",
			goerr.V("tag", draft.Tag),
			goerr.T(types.ErrTagPublish),
		)
	}
	return nil
}
