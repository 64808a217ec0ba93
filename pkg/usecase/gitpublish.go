package usecase

import (
	"context"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// commitAndTag records the version bump: stages the manifest, its lock file
// and the archive, commits, and creates the annotated tag. Each completed
// mutation is added to the trail.
func (uc *Release) commitAndTag(ctx context.Context, req *model.ReleaseRequest, bundle *model.ReleaseBundle, trail *progressTrail) error {
	logger := ctxlog.From(ctx)
	message := "Release " + bundle.Tag

	if req.DryRun {
		logger.Info("dry-run: would commit and tag",
			"files", []string{uc.project.Manifest, uc.project.Lockfile, bundle.ArchivePath},
			"message", message,
			"tag", bundle.Tag,
		)
		return nil
	}

	if err := uc.git.Add(ctx, uc.project.Manifest, uc.project.Lockfile, bundle.ArchivePath); err != nil {
		return goerr.Wrap(err, "failed to stage release files", goerr.T(types.ErrTagVCS))
	}

	if err := uc.git.Commit(ctx, message); err != nil {
		return goerr.Wrap(err, "failed to create release commit", goerr.T(types.ErrTagVCS))
	}
	trail.done("local commit " + message)
	logger.Info("created release commit", "message", message)

	if err := uc.git.CreateTag(ctx, bundle.Tag, message); err != nil {
		return goerr.Wrap(err, "failed to create annotated tag",
			goerr.V("tag", bundle.Tag),
			goerr.T(types.ErrTagVCS),
		)
	}
	trail.done("local tag " + bundle.Tag)
	logger.Info("created annotated tag", "tag", bundle.Tag)

	return nil
}

// push sends the branch first and the tag second, so the remote never holds
// a tag whose commit it does not have. Skipped entirely under --no-push.
func (uc *Release) push(ctx context.Context, req *model.ReleaseRequest, bundle *model.ReleaseBundle, trail *progressTrail) error {
	logger := ctxlog.From(ctx)

	if req.NoPush {
		logger.Info("skipping push (--no-push)")
		return nil
	}

	branch, err := uc.git.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	if req.DryRun {
		logger.Info("dry-run: would push",
			"remote", uc.project.Remote,
			"branch", branch,
			"tag", bundle.Tag,
		)
		return nil
	}

	if err := uc.git.PushBranch(ctx, uc.project.Remote, branch); err != nil {
		return goerr.Wrap(err, "failed to push branch",
			goerr.V("remote", uc.project.Remote),
			goerr.V("branch", branch),
			goerr.T(types.ErrTagVCS),
		)
	}
	trail.done("pushed branch " + branch + " to " + uc.project.Remote)
	logger.Info("pushed branch", "remote", uc.project.Remote, "branch", branch)

	if err := uc.git.PushTag(ctx, uc.project.Remote, bundle.Tag); err != nil {
		return goerr.Wrap(err, "failed to push tag",
			goerr.V("remote", uc.project.Remote),
			goerr.V("tag", bundle.Tag),
			goerr.T(types.ErrTagVCS),
		)
	}
	trail.done("pushed tag " + bundle.Tag + " to " + uc.project.Remote)
	logger.Info("pushed tag", "remote", uc.project.Remote, "tag", bundle.Tag)

	return nil
}
