package usecase

import (
	"context"
	"os"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// preflight verifies the environment and repository are releasable. Checks
// run in order and the first failure stops the rest. Nothing here mutates
// state.
func (uc *Release) preflight(ctx context.Context, req *model.ReleaseRequest) error {
	logger := ctxlog.From(ctx)

	tools := []string{"git", "cargo"}
	if uc.checkGH && !req.NoPush {
		tools = append(tools, "gh")
	}
	for _, tool := range tools {
		if _, err := uc.lookPath(tool); err != nil {
			return goerr.Wrap(err, "required tool not found on PATH",
				goerr.V("tool", tool),
				goerr.T(types.ErrTagEnvironment),
			)
		}
	}

	if _, err := os.Stat(uc.project.Manifest); err != nil {
		return goerr.Wrap(err, "not at the project root, manifest not found",
			goerr.V("manifest", uc.project.Manifest),
			goerr.T(types.ErrTagEnvironment),
		)
	}

	status, err := uc.git.Status(ctx)
	if err != nil {
		return err
	}
	if status != "" {
		return goerr.New("working tree has pending changes, commit or stash them first",
			goerr.V(types.KeyDetails, status),
			goerr.T(types.ErrTagRepoState),
		)
	}

	branch, err := uc.git.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if !uc.project.IsReleaseBranch(branch) {
		if req.Force {
			logger.Warn("releasing from a non-release branch", "branch", branch)
			return nil
		}

		ok, err := uc.prompter.Confirm("current branch " + branch + " is not a release branch, continue anyway?")
		if err != nil {
			return err
		}
		if !ok {
			return goerr.New("release declined on non-release branch",
				goerr.V("branch", branch),
				goerr.T(types.ErrTagRepoState),
			)
		}
	}

	return nil
}
