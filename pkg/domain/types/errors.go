package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify pipeline failures. Every failure is fatal; the tag
// only determines how the CLI layer reports it.
var (
	ErrTagUsage       = goerr.NewTag("usage")
	ErrTagEnvironment = goerr.NewTag("environment")
	ErrTagRepoState   = goerr.NewTag("repository_state")
	ErrTagBuild       = goerr.NewTag("build")
	ErrTagAsset       = goerr.NewTag("asset")
	ErrTagVCS         = goerr.NewTag("vcs")
	ErrTagPublish     = goerr.NewTag("publish")
)

// KeyDetails marks a multi-line detail block attached to an error. The CLI
// prints the value verbatim to stderr after the error summary.
const KeyDetails = "details"
