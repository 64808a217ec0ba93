package interfaces

import (
	"context"

	"github.com/epdisplay/release/pkg/domain/model"
)

// ReleaseClient publishes a hosted release for a tag with one attached
// archive. Two implementations exist: the gh CLI wrapper and the GitHub REST
// client used when an API token is configured.
type ReleaseClient interface {
	CreateRelease(ctx context.Context, draft *model.ReleaseDraft) error
}

// Manifest reads and rewrites the project manifest's version field.
type Manifest interface {
	// ReadVersion returns the declared package version.
	ReadVersion() (string, error)

	// WriteVersion rewrites the version field in place, leaving the rest of
	// the manifest untouched.
	WriteVersion(version string) error
}

// Prompter asks the operator for confirmation. Injected so pipeline logic is
// testable without a terminal.
type Prompter interface {
	Confirm(prompt string) (bool, error)
}
