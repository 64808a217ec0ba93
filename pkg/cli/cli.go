package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/epdisplay/release/pkg/cli/config"
	"github.com/epdisplay/release/pkg/domain/interfaces"
	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/epdisplay/release/pkg/infra/cargo"
	"github.com/epdisplay/release/pkg/infra/ghcli"
	"github.com/epdisplay/release/pkg/infra/git"
	githubinfra "github.com/epdisplay/release/pkg/infra/github"
	"github.com/epdisplay/release/pkg/usecase"
	"github.com/epdisplay/release/pkg/utils/prompt"
	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg  config.Logger
		projectCfg config.Project
		githubCfg  config.GitHub

		bump   string
		dryRun bool
		noPush bool
		force  bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "bump",
			Usage:       "Bump the current version: major, minor or patch",
			Destination: &bump,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Log every action without performing it",
			Destination: &dryRun,
		},
		&cli.BoolFlag{
			Name:        "no-push",
			Usage:       "Commit and tag locally, skip push and hosted release",
			Destination: &noPush,
		},
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Skip the non-release-branch confirmation",
			Destination: &force,
		},
	}
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, projectCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)

	app := &cli.Command{
		Name:      "release",
		Usage:     "Tag, package and publish a project release",
		ArgsUsage: "[version]",
		Version:   types.Version,
		Flags:     flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			bumpKind, err := model.ParseBumpKind(bump)
			if err != nil {
				return err
			}

			req := &model.ReleaseRequest{
				ExplicitVersion: c.Args().First(),
				Bump:            bumpKind,
				DryRun:          dryRun,
				NoPush:          noPush,
				Force:           force,
			}

			project, err := projectCfg.Load()
			if err != nil {
				return err
			}

			gitClient := git.New()

			hosting, apiMode, err := buildHosting(ctx, gitClient, project, githubCfg.Token)
			if err != nil {
				return err
			}

			uc := usecase.NewRelease(
				project,
				gitClient,
				cargo.NewManifest(project.Manifest),
				cargo.NewBuilder(),
				hosting,
				prompt.New(),
				usecase.WithGHCheck(!apiMode),
			)

			return uc.Run(ctx, req)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		printError(err)
		return err
	}
	return nil
}

// buildHosting picks the hosted-release client: GitHub REST when a token is
// configured, the gh CLI otherwise. API mode needs the repository
// coordinates, parsed from the push remote.
func buildHosting(ctx context.Context, gitClient interfaces.GitClient, project *model.Project, token string) (interfaces.ReleaseClient, bool, error) {
	if token == "" {
		return ghcli.New(), false, nil
	}

	remoteURL, err := gitClient.RemoteURL(ctx, project.Remote)
	if err != nil {
		return nil, false, err
	}
	owner, repo, err := githubinfra.ParseRepo(remoteURL)
	if err != nil {
		return nil, false, err
	}
	return githubinfra.NewClient(token, owner, repo), true, nil
}

// printError writes the summary and any verbatim detail block to stderr.
// Failure is signaled by the exit code plus this text; there is no
// machine-readable error channel.
func printError(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		if details, ok := ge.Values()[types.KeyDetails].(string); ok && details != "" {
			fmt.Fprintln(os.Stderr, details)
		}
	}
}
