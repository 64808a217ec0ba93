package config

import (
	"os"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Project holds project configuration sources: an optional release.yml plus
// flag overrides.
type Project struct {
	Path   string
	Remote string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Project release configuration file",
			Value:       "release.yml",
			Destination: &c.Path,
			Sources:     cli.EnvVars("RELEASE_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "remote",
			Usage:       "Git remote to push to",
			Destination: &c.Remote,
			Sources:     cli.EnvVars("RELEASE_REMOTE"),
		},
	}
}

// Load reads the configuration file when present and applies defaults and
// flag overrides. A missing file is not an error; the defaults describe the
// epaper-display project.
func (c *Project) Load() (*model.Project, error) {
	project := &model.Project{}

	data, err := os.ReadFile(c.Path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, goerr.Wrap(err, "failed to read project config",
			goerr.V("path", c.Path),
			goerr.T(types.ErrTagEnvironment),
		)
	default:
		if err := yaml.Unmarshal(data, project); err != nil {
			return nil, goerr.Wrap(err, "failed to parse project config",
				goerr.V("path", c.Path),
				goerr.T(types.ErrTagEnvironment),
			)
		}
	}

	project.Normalize()
	if c.Remote != "" {
		project.Remote = c.Remote
	}
	return project, nil
}
