package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

const archiveSuffix = ".tar.gz"

// ReleaseBundle holds every name derived from the target version. The
// staging directory name and the archive name must stay derivable from each
// other: later stages reference ArchivePath without going through staging.
type ReleaseBundle struct {
	Version     string // canonical X.Y.Z
	Tag         string // "v" + Version
	ArchiveName string // <binary>-<version>-linux-<arch>.tar.gz
	ArchivePath string // <release dir>/<archive name>
	StagingName string // archive name with the .tar.gz suffix stripped
	StagingPath string // <release dir>/<staging name>
}

// NewBundle derives the bundle names for one release. Pure and
// deterministic: the same inputs always produce the same names.
func NewBundle(binary, version, arch, releaseDir string) *ReleaseBundle {
	name := fmt.Sprintf("%s-%s-linux-%s%s", binary, version, arch, archiveSuffix)
	staging := strings.TrimSuffix(name, archiveSuffix)

	return &ReleaseBundle{
		Version:     version,
		Tag:         "v" + version,
		ArchiveName: name,
		ArchivePath: filepath.Join(releaseDir, name),
		StagingName: staging,
		StagingPath: filepath.Join(releaseDir, staging),
	}
}

// ReleaseDraft is the hosted release to publish for a bundle.
type ReleaseDraft struct {
	Tag       string
	Title     string
	Notes     string
	AssetPath string
	Latest    bool
}
