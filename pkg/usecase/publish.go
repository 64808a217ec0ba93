package usecase

import (
	"context"
	"os"
	"strings"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// publish creates the hosted release with derived notes and the archive
// attached. Skipped under --no-push: a release object without the pushed tag
// would dangle.
func (uc *Release) publish(ctx context.Context, req *model.ReleaseRequest, bundle *model.ReleaseBundle) error {
	logger := ctxlog.From(ctx)

	if req.NoPush {
		logger.Info("skipping hosted release (--no-push)")
		return nil
	}

	notes, err := uc.releaseNotes(ctx, bundle.Tag, req.DryRun)
	if err != nil {
		return err
	}

	if req.DryRun {
		logger.Info("dry-run: would publish hosted release",
			"tag", bundle.Tag,
			"archive", bundle.ArchivePath,
			"notes", notes,
		)
		return nil
	}

	// Verified again independently of the bundling stage: publishing may in
	// principle happen long after the archive was produced.
	if _, err := os.Stat(bundle.ArchivePath); err != nil {
		return goerr.Wrap(err, "release archive not found",
			goerr.V("path", bundle.ArchivePath),
			goerr.T(types.ErrTagAsset),
		)
	}

	draft := &model.ReleaseDraft{
		Tag:       bundle.Tag,
		Title:     "Release " + bundle.Tag,
		Notes:     notes,
		AssetPath: bundle.ArchivePath,
		Latest:    true,
	}

	logger.Info("publishing hosted release", "tag", draft.Tag)
	if err := uc.hosting.CreateRelease(ctx, draft); err != nil {
		return err
	}

	logger.Info("published hosted release", "tag", draft.Tag)
	return nil
}

// releaseNotes collects one-line non-merge commit summaries since the tag
// preceding the new tag's parent commit. A first release has no prior tag
// and gets a fixed note instead.
func (uc *Release) releaseNotes(ctx context.Context, tag string, dryRun bool) (string, error) {
	// In dry-run the tag was never created, so the parent lookup starts at
	// HEAD rather than at the tag.
	ref := tag + "^"
	if dryRun {
		ref = "HEAD"
	}

	prev, err := uc.git.PreviousTag(ctx, ref)
	if err != nil {
		return "", err
	}
	if prev == "" {
		return "Initial release", nil
	}

	summaries, err := uc.git.CommitSummaries(ctx, prev, "HEAD")
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		lines = append(lines, "- "+s)
	}
	return strings.Join(lines, "\n"), nil
}
