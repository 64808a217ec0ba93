package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/epdisplay/release/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestProject_Load_Defaults(t *testing.T) {
	cfg := &config.Project{Path: filepath.Join(t.TempDir(), "release.yml")}

	project, err := cfg.Load()
	gt.NoError(t, err)

	gt.Value(t, project.Binary).Equal("epaper-display")
	gt.Value(t, project.Target).Equal("arm-unknown-linux-gnueabihf")
	gt.Value(t, project.Arch).Equal("armv6")
	gt.Value(t, project.ReleaseDir).Equal("release")
	gt.Value(t, project.Remote).Equal("origin")
	gt.Value(t, project.Branches).Equal([]string{"main", "master"})
	gt.Value(t, project.Manifest).Equal("Cargo.toml")
	gt.Value(t, project.Lockfile).Equal("Cargo.lock")
	gt.Value(t, project.Assets[0]).Equal("target/arm-unknown-linux-gnueabihf/release/epaper-display")
}

func TestProject_Load_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.yml")
	content := `binary: frame-server
arch: arm64
target: aarch64-unknown-linux-gnu
branches: [release]
assets:
  - target/aarch64-unknown-linux-gnu/release/frame-server
  - setup.sh
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	project, err := (&config.Project{Path: path}).Load()
	gt.NoError(t, err)

	gt.Value(t, project.Binary).Equal("frame-server")
	gt.Value(t, project.Arch).Equal("arm64")
	gt.Value(t, project.Branches).Equal([]string{"release"})
	gt.Value(t, project.Assets).Equal([]string{
		"target/aarch64-unknown-linux-gnu/release/frame-server",
		"setup.sh",
	})

	// unset fields still fall back to defaults
	gt.Value(t, project.Remote).Equal("origin")
	gt.Value(t, project.Manifest).Equal("Cargo.toml")
}

func TestProject_Load_RemoteOverride(t *testing.T) {
	cfg := &config.Project{
		Path:   filepath.Join(t.TempDir(), "release.yml"),
		Remote: "upstream",
	}

	project, err := cfg.Load()
	gt.NoError(t, err)
	gt.Value(t, project.Remote).Equal("upstream")
}

func TestProject_Load_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.yml")
	gt.NoError(t, os.WriteFile(path, []byte("binary: [unclosed"), 0644))

	_, err := (&config.Project{Path: path}).Load()
	gt.Error(t, err)
}

func TestProject_IsReleaseBranch(t *testing.T) {
	cfg := &config.Project{Path: filepath.Join(t.TempDir(), "release.yml")}
	project, err := cfg.Load()
	gt.NoError(t, err)

	gt.Value(t, project.IsReleaseBranch("main")).Equal(true)
	gt.Value(t, project.IsReleaseBranch("master")).Equal(true)
	gt.Value(t, project.IsReleaseBranch("feature/x")).Equal(false)
}
