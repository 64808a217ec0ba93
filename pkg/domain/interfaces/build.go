package interfaces

import "context"

// BuildRunner invokes the external build toolchain. The call is synchronous
// and the pipeline treats its output as opaque beyond pass or fail.
type BuildRunner interface {
	// Build compiles the release binary for the given target triple.
	Build(ctx context.Context, target string) error
}
