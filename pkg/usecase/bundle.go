package usecase

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// bundleAssets stages the assets into a versioned directory and packs them
// into the release archive. The staging directory is recreated from scratch
// so leftovers from a prior failed run never leak into the archive, and it
// is removed again once the archive is written.
func (uc *Release) bundleAssets(ctx context.Context, req *model.ReleaseRequest, bundle *model.ReleaseBundle) error {
	logger := ctxlog.From(ctx)

	// Assets are flattened by basename into the staging root, so two assets
	// sharing a basename would silently clobber each other. Rejected up
	// front, also in dry-run so the rehearsal catches it.
	seen := map[string]string{}
	for _, asset := range uc.project.Assets {
		base := filepath.Base(asset)
		if prev, ok := seen[base]; ok {
			return goerr.New("asset basename collision, archive staging is flat",
				goerr.V("basename", base),
				goerr.V("first", prev),
				goerr.V("second", asset),
				goerr.T(types.ErrTagAsset),
			)
		}
		seen[base] = asset
	}

	if req.DryRun {
		logger.Info("dry-run: would create archive",
			"archive", bundle.ArchivePath,
			"extracts_to", bundle.StagingName,
			"assets", uc.project.Assets,
		)
		return nil
	}

	if err := os.MkdirAll(uc.project.ReleaseDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create release directory",
			goerr.V("dir", uc.project.ReleaseDir),
			goerr.T(types.ErrTagAsset),
		)
	}

	if err := os.RemoveAll(bundle.StagingPath); err != nil {
		return goerr.Wrap(err, "failed to remove stale staging directory",
			goerr.V("dir", bundle.StagingPath),
			goerr.T(types.ErrTagAsset),
		)
	}
	if err := os.MkdirAll(bundle.StagingPath, 0755); err != nil {
		return goerr.Wrap(err, "failed to create staging directory",
			goerr.V("dir", bundle.StagingPath),
			goerr.T(types.ErrTagAsset),
		)
	}

	for _, asset := range uc.project.Assets {
		dst := filepath.Join(bundle.StagingPath, filepath.Base(asset))
		if err := copyFile(asset, dst); err != nil {
			return goerr.Wrap(err, "failed to stage asset",
				goerr.V("asset", asset),
				goerr.T(types.ErrTagAsset),
			)
		}
	}

	logger.Info("packing archive", "archive", bundle.ArchivePath)
	if err := packArchive(bundle.ArchivePath, bundle.StagingPath, bundle.StagingName); err != nil {
		return err
	}

	if err := os.RemoveAll(bundle.StagingPath); err != nil {
		return goerr.Wrap(err, "failed to remove staging directory",
			goerr.V("dir", bundle.StagingPath),
			goerr.T(types.ErrTagAsset),
		)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	stat, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, stat.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// packArchive writes a gzip-compressed tar of stagingDir. Entries are
// prefixed with prefix so the archive extracts into a directory named after
// itself, and sorted so the archive layout is deterministic.
func packArchive(archivePath, stagingDir, prefix string) error {
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return goerr.Wrap(err, "failed to read staging directory", goerr.V("dir", stagingDir))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	f, err := os.Create(archivePath)
	if err != nil {
		return goerr.Wrap(err, "failed to create archive",
			goerr.V("path", archivePath),
			goerr.T(types.ErrTagAsset),
		)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)

	for _, entry := range entries {
		if err := addTarEntry(tw, filepath.Join(stagingDir, entry.Name()), prefix+"/"+entry.Name()); err != nil {
			return goerr.Wrap(err, "failed to add archive entry",
				goerr.V("entry", entry.Name()),
				goerr.T(types.ErrTagAsset),
			)
		}
	}

	if err := tw.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize archive", goerr.V("path", archivePath))
	}
	if err := gw.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize archive", goerr.V("path", archivePath))
	}
	return nil
}

func addTarEntry(tw *tar.Writer, path, name string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := tar.FileInfoHeader(stat, "")
	if err != nil {
		return err
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	_, err = io.Copy(tw, in)
	return err
}
