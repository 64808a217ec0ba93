package usecase

import (
	"context"
	"os/exec"
	"strings"

	"github.com/epdisplay/release/pkg/domain/interfaces"
	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Release runs the whole pipeline: resolve version, preflight, tag check,
// manifest rewrite, build, asset verification, archive bundling, commit and
// tag, push, hosted-release publish. Strictly linear, first error halts it;
// there is no rollback of side effects already applied.
type Release struct {
	project  *model.Project
	git      interfaces.GitClient
	manifest interfaces.Manifest
	builder  interfaces.BuildRunner
	hosting  interfaces.ReleaseClient
	prompter interfaces.Prompter
	lookPath func(string) (string, error)
	checkGH  bool
}

// Option configures a Release use case.
type Option func(*Release)

// WithLookPath replaces the executable lookup used by preflight. For tests.
func WithLookPath(f func(string) (string, error)) Option {
	return func(r *Release) {
		r.lookPath = f
	}
}

// WithGHCheck controls whether preflight requires the gh executable. Off
// when publishing through the GitHub API or when the push is skipped.
func WithGHCheck(enabled bool) Option {
	return func(r *Release) {
		r.checkGH = enabled
	}
}

// NewRelease wires the pipeline with its collaborators.
func NewRelease(
	project *model.Project,
	git interfaces.GitClient,
	manifest interfaces.Manifest,
	builder interfaces.BuildRunner,
	hosting interfaces.ReleaseClient,
	prompter interfaces.Prompter,
	options ...Option,
) *Release {
	r := &Release{
		project:  project,
		git:      git,
		manifest: manifest,
		builder:  builder,
		hosting:  hosting,
		prompter: prompter,
		lookPath: exec.LookPath,
		checkGH:  true,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Run executes the pipeline for one immutable request.
func (uc *Release) Run(ctx context.Context, req *model.ReleaseRequest) error {
	logger := ctxlog.From(ctx)

	currentStr, err := uc.manifest.ReadVersion()
	if err != nil {
		return err
	}
	current, err := model.ParseVersion(currentStr)
	if err != nil {
		return goerr.Wrap(err, "manifest declares an invalid version",
			goerr.T(types.ErrTagEnvironment),
		)
	}

	target, err := ResolveVersion(current, req)
	if err != nil {
		return err
	}

	bundle := model.NewBundle(uc.project.Binary, target.String(), uc.project.Arch, uc.project.ReleaseDir)
	logger.Info("releasing",
		"current", current.String(),
		"target", target.String(),
		"tag", bundle.Tag,
		"dry_run", req.DryRun,
	)

	if err := uc.preflight(ctx, req); err != nil {
		return err
	}
	if err := uc.checkTagFree(ctx, bundle.Tag); err != nil {
		return err
	}
	if err := uc.writeVersion(ctx, req, target.String()); err != nil {
		return err
	}
	if err := uc.buildArtifact(ctx, req); err != nil {
		return err
	}
	if err := uc.verifyAssets(ctx); err != nil {
		return err
	}
	if err := uc.bundleAssets(ctx, req, bundle); err != nil {
		return err
	}

	// From here on side effects accumulate. The trail records each completed
	// mutation so a failure message tells the operator exactly what to undo
	// by hand.
	trail := &progressTrail{}
	if err := uc.commitAndTag(ctx, req, bundle, trail); err != nil {
		return trail.wrap(err)
	}
	if err := uc.push(ctx, req, bundle, trail); err != nil {
		return trail.wrap(err)
	}
	if err := uc.publish(ctx, req, bundle); err != nil {
		return trail.wrap(err)
	}

	if req.DryRun {
		logger.Info("dry-run complete, nothing was modified", "tag", bundle.Tag)
	} else {
		logger.Info("release complete", "tag", bundle.Tag, "archive", bundle.ArchivePath)
	}
	return nil
}

// checkTagFree is the idempotency guard: a tag that already exists means the
// version was released before, and re-tagging it would double-publish.
func (uc *Release) checkTagFree(ctx context.Context, tag string) error {
	exists, err := uc.git.TagExists(ctx, tag)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	info, err := uc.git.TagInfo(ctx, tag)
	if err != nil {
		return err
	}

	details := strings.Join([]string{
		"tag " + tag + " points at " + info.Commit + " (created " + info.CreatedAt + ")",
		"to release this version again, delete the tag first:",
		"  git tag -d " + tag,
		"  git push " + uc.project.Remote + " --delete " + tag,
	}, "\n")

	return goerr.New("tag already exists",
		goerr.V("tag", tag),
		goerr.V("commit", info.Commit),
		goerr.V("created_at", info.CreatedAt),
		goerr.V(types.KeyDetails, details),
		goerr.T(types.ErrTagRepoState),
	)
}

func (uc *Release) writeVersion(ctx context.Context, req *model.ReleaseRequest, version string) error {
	logger := ctxlog.From(ctx)

	if req.DryRun {
		logger.Info("dry-run: would set manifest version",
			"manifest", uc.project.Manifest,
			"version", version,
		)
		return nil
	}

	logger.Info("updating manifest version", "manifest", uc.project.Manifest, "version", version)
	return uc.manifest.WriteVersion(version)
}

func (uc *Release) buildArtifact(ctx context.Context, req *model.ReleaseRequest) error {
	logger := ctxlog.From(ctx)

	if req.DryRun {
		logger.Info("dry-run: would build release binary", "target", uc.project.Target)
		return nil
	}
	return uc.builder.Build(ctx, uc.project.Target)
}

// progressTrail records completed mutating steps. No rollback runs on
// failure, so the trail is the operator's map for manual recovery.
type progressTrail struct {
	steps []string
}

func (p *progressTrail) done(step string) {
	p.steps = append(p.steps, step)
}

func (p *progressTrail) wrap(err error) error {
	if err == nil || len(p.steps) == 0 {
		return err
	}
	return goerr.Wrap(err, "release failed after partial progress",
		goerr.V("completed_steps", p.steps),
		goerr.V(types.KeyDetails, "completed before the failure:\n  - "+strings.Join(p.steps, "\n  - ")),
	)
}
