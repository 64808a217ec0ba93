package model

import "fmt"

// Project describes the project being released. Loaded from an optional
// release.yml; empty fields fall back to defaults matching the epaper-display
// project this tool was built for.
type Project struct {
	Binary     string   `yaml:"binary"`      // binary and archive base name
	Target     string   `yaml:"target"`      // cargo target triple
	Arch       string   `yaml:"arch"`        // arch label used in archive names
	ReleaseDir string   `yaml:"release_dir"` // archive output directory
	Remote     string   `yaml:"remote"`      // git remote to push to
	Branches   []string `yaml:"branches"`    // accepted release branches
	Manifest   string   `yaml:"manifest"`    // project manifest path
	Lockfile   string   `yaml:"lockfile"`    // lock file staged into the release commit
	Assets     []string `yaml:"assets"`      // ordered distribution file list
}

// Normalize fills empty fields with the built-in defaults. The default asset
// list depends on the target triple, so it is computed last.
func (p *Project) Normalize() {
	if p.Binary == "" {
		p.Binary = "epaper-display"
	}
	if p.Target == "" {
		p.Target = "arm-unknown-linux-gnueabihf"
	}
	if p.Arch == "" {
		p.Arch = "armv6"
	}
	if p.ReleaseDir == "" {
		p.ReleaseDir = "release"
	}
	if p.Remote == "" {
		p.Remote = "origin"
	}
	if len(p.Branches) == 0 {
		p.Branches = []string{"main", "master"}
	}
	if p.Manifest == "" {
		p.Manifest = "Cargo.toml"
	}
	if p.Lockfile == "" {
		p.Lockfile = "Cargo.lock"
	}
	if len(p.Assets) == 0 {
		p.Assets = []string{
			fmt.Sprintf("target/%s/release/%s", p.Target, p.Binary),
			"install.sh",
			"deploy.sh",
			p.Binary + ".service",
			"config.example.json",
			"README.md",
		}
	}
}

// IsReleaseBranch reports whether branch is in the accepted release branch
// list.
func (p *Project) IsReleaseBranch(branch string) bool {
	for _, b := range p.Branches {
		if b == branch {
			return true
		}
	}
	return false
}
