package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// verifyAssets confirms every distribution file exists, in declaration
// order, before any bundling starts. Existence only; content is not checked.
func (uc *Release) verifyAssets(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	for _, asset := range uc.project.Assets {
		if _, err := os.Stat(asset); err != nil {
			abs, absErr := filepath.Abs(asset)
			if absErr != nil {
				abs = asset
			}
			return goerr.Wrap(err, "required asset missing",
				goerr.V("asset", asset),
				goerr.V("expected_path", abs),
				goerr.T(types.ErrTagAsset),
			)
		}
	}

	logger.Debug("all assets present", "count", len(uc.project.Assets))
	return nil
}
