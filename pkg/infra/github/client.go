package github

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/epdisplay/release/pkg/domain/interfaces"
	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/google/go-github/v60/github"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	githubClient *github.Client
	owner        string
	repo         string
}

// NewClient creates a ReleaseClient that talks to the GitHub REST API with a
// personal access token. Used instead of the gh CLI when a token is
// configured.
func NewClient(token, owner, repo string) interfaces.ReleaseClient {
	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
		owner:        owner,
		repo:         repo,
	}
}

// CreateRelease publishes the release and uploads the archive as its asset.
func (c *client) CreateRelease(ctx context.Context, draft *model.ReleaseDraft) error {
	makeLatest := "false"
	if draft.Latest {
		makeLatest = "true"
	}

	release, _, err := c.githubClient.Repositories.CreateRelease(ctx, c.owner, c.repo, &github.RepositoryRelease{
		TagName:    github.String(draft.Tag),
		Name:       github.String(draft.Title),
		Body:       github.String(draft.Notes),
		MakeLatest: github.String(makeLatest),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create GitHub release",
			goerr.V("tag", draft.Tag),
			goerr.V("repo", c.owner+"/"+c.repo),
			goerr.T(types.ErrTagPublish),
		)
	}

	f, err := os.Open(draft.AssetPath)
	if err != nil {
		return goerr.Wrap(err, "failed to open release asset",
			goerr.V("path", draft.AssetPath),
			goerr.T(types.ErrTagPublish),
		)
	}
	defer f.Close()

	opts := &github.UploadOptions{Name: filepath.Base(draft.AssetPath)}
	if _, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, c.owner, c.repo, release.GetID(), opts, f); err != nil {
		return goerr.Wrap(err, "failed to upload release asset",
			goerr.V("tag", draft.Tag),
			goerr.V("path", draft.AssetPath),
			goerr.T(types.ErrTagPublish),
		)
	}

	return nil
}

// ParseRepo extracts owner and repository name from a git remote URL,
// accepting both HTTPS and SSH forms.
func ParseRepo(remoteURL string) (owner, repo string, err error) {
	s := strings.TrimSpace(remoteURL)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "ssh://")
	s = strings.TrimPrefix(s, "git@")
	s = strings.TrimPrefix(s, "github.com:")
	s = strings.TrimPrefix(s, "github.com/")
	s = strings.TrimSuffix(s, ".git")
	s = strings.TrimSuffix(s, "/")

	parts := strings.SplitN(s, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.New("cannot parse GitHub repository from remote URL",
			goerr.V("url", remoteURL),
			goerr.T(types.ErrTagEnvironment),
		)
	}
	return parts[0], parts[1], nil
}
