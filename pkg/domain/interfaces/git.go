package interfaces

import (
	"context"

	"github.com/epdisplay/release/pkg/domain/model"
)

// GitClient wraps every git operation the pipeline needs. Queries reflect
// live repository state at call time; results are never cached, because each
// check must see the truth immediately before the mutation that follows it.
type GitClient interface {
	// CurrentBranch returns the checked-out branch name.
	CurrentBranch(ctx context.Context) (string, error)

	// Status returns the porcelain status output. Empty means clean.
	Status(ctx context.Context) (string, error)

	// TagExists reports whether a local ref with the given tag name exists.
	TagExists(ctx context.Context, tag string) (bool, error)

	// TagInfo returns the commit and creation date of an existing tag.
	TagInfo(ctx context.Context, tag string) (*model.TagInfo, error)

	// PreviousTag returns the nearest tag reachable from ref, or "" when no
	// tag precedes it.
	PreviousTag(ctx context.Context, ref string) (string, error)

	// CommitSummaries returns the one-line summaries of non-merge commits
	// between from (exclusive) and to, in git log order.
	CommitSummaries(ctx context.Context, from, to string) ([]string, error)

	// RemoteURL returns the fetch URL of the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)

	Add(ctx context.Context, paths ...string) error
	Commit(ctx context.Context, message string) error
	CreateTag(ctx context.Context, tag, message string) error
	PushBranch(ctx context.Context, remote, branch string) error
	PushTag(ctx context.Context, remote, tag string) error
}
