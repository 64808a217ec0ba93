package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub configuration
type GitHub struct {
	Token string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token; publishes via the REST API instead of the gh CLI",
			Destination: &c.Token,
			Sources:     cli.EnvVars("RELEASE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
	}
}
