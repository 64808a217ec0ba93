package git

import (
	"context"
	"strings"

	"github.com/epdisplay/release/pkg/domain/interfaces"
	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/epdisplay/release/pkg/utils/cmdx"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	dir string
}

// Option configures the git client.
type Option func(*client)

// WithDir runs every git command in dir instead of the process working
// directory. Used by tests against throwaway repositories.
func WithDir(dir string) Option {
	return func(c *client) {
		c.dir = dir
	}
}

// New creates a GitClient backed by the git executable.
func New(options ...Option) interfaces.GitClient {
	c := &client{}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *client) git(ctx context.Context, args ...string) (string, error) {
	out, err := cmdx.Run(ctx, c.dir, "git", args...)
	if err != nil {
		return out, goerr.Wrap(err, "git invocation failed", goerr.T(types.ErrTagVCS))
	}
	return out, nil
}

func (c *client) CurrentBranch(ctx context.Context) (string, error) {
	return c.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

func (c *client) Status(ctx context.Context) (string, error) {
	return c.git(ctx, "status", "--porcelain")
}

func (c *client) TagExists(ctx context.Context, tag string) (bool, error) {
	out, err := c.git(ctx, "tag", "--list", tag)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

func (c *client) TagInfo(ctx context.Context, tag string) (*model.TagInfo, error) {
	out, err := c.git(ctx, "log", "-1", "--format=%H%n%ci", tag)
	if err != nil {
		return nil, err
	}

	lines := strings.SplitN(out, "\n", 2)
	info := &model.TagInfo{Name: tag, Commit: lines[0]}
	if len(lines) > 1 {
		info.CreatedAt = strings.TrimSpace(lines[1])
	}
	return info, nil
}

func (c *client) PreviousTag(ctx context.Context, ref string) (string, error) {
	// describe exits non-zero when no tag is reachable from ref, which is a
	// normal condition for a first release.
	out, err := cmdx.Run(ctx, c.dir, "git", "describe", "--tags", "--abbrev=0", ref)
	if err != nil {
		return "", nil
	}
	return out, nil
}

func (c *client) CommitSummaries(ctx context.Context, from, to string) ([]string, error) {
	out, err := c.git(ctx, "log", "--no-merges", "--pretty=format:%s", from+".."+to)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (c *client) RemoteURL(ctx context.Context, remote string) (string, error) {
	return c.git(ctx, "remote", "get-url", remote)
}

func (c *client) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := c.git(ctx, args...)
	return err
}

func (c *client) Commit(ctx context.Context, message string) error {
	_, err := c.git(ctx, "commit", "-m", message)
	return err
}

func (c *client) CreateTag(ctx context.Context, tag, message string) error {
	_, err := c.git(ctx, "tag", "-a", tag, "-m", message)
	return err
}

func (c *client) PushBranch(ctx context.Context, remote, branch string) error {
	_, err := c.git(ctx, "push", remote, branch)
	return err
}

func (c *client) PushTag(ctx context.Context, remote, tag string) error {
	_, err := c.git(ctx, "push", remote, tag)
	return err
}
