package cargo

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/epdisplay/release/pkg/domain/interfaces"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

var versionLine = regexp.MustCompile(`^(\s*)version(\s*)=`)

type manifest struct {
	path string
}

// NewManifest wraps a Cargo.toml file.
func NewManifest(path string) interfaces.Manifest {
	return &manifest{path: path}
}

// ReadVersion parses the [package] version field.
func (m *manifest) ReadVersion() (string, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read manifest",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagEnvironment),
		)
	}

	var doc struct {
		Package struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", goerr.Wrap(err, "failed to parse manifest",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagEnvironment),
		)
	}

	if doc.Package.Version == "" {
		return "", goerr.New("manifest has no package version",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagEnvironment),
		)
	}
	return doc.Package.Version, nil
}

// WriteVersion replaces the version line inside the [package] section,
// leaving every other byte of the manifest untouched. A TOML re-marshal
// would drop comments and reorder keys, so the rewrite is textual.
func (m *manifest) WriteVersion(version string) error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read manifest",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagEnvironment),
		)
	}

	lines := strings.Split(string(data), "\n")
	inPackage := false
	replaced := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inPackage = trimmed == "[package]"
			continue
		}
		if inPackage && !replaced && versionLine.MatchString(line) {
			lines[i] = fmt.Sprintf("version = %q", version)
			replaced = true
		}
	}

	if !replaced {
		return goerr.New("manifest has no package version line",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagEnvironment),
		)
	}

	stat, err := os.Stat(m.path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat manifest", goerr.V("path", m.path))
	}

	if err := os.WriteFile(m.path, []byte(strings.Join(lines, "\n")), stat.Mode()); err != nil {
		return goerr.Wrap(err, "failed to rewrite manifest",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagEnvironment),
		)
	}
	return nil
}
