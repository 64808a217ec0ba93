package model

// ReleaseRequest is the resolved intent of one CLI invocation. It is built
// once from arguments and flags and never mutated afterwards; every stage
// receives it explicitly instead of reading ambient process state.
type ReleaseRequest struct {
	ExplicitVersion string   // positional version argument, "" when absent
	Bump            BumpKind // --bump, BumpNone when absent
	DryRun          bool     // log every action instead of performing it
	NoPush          bool     // stop after the local commit and tag
	Force           bool     // skip the non-release-branch confirmation
}
