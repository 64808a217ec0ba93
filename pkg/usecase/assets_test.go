package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// With assets [A, B, C] where only B is missing, the reported asset must be
// exactly B: checks run in declaration order and stop at the first miss.
func TestVerifyAssets_Order(t *testing.T) {
	env := newTestEnv(t)

	a := filepath.Join(env.dir, "asset-a")
	b := filepath.Join(env.dir, "asset-b")
	c := filepath.Join(env.dir, "asset-c")
	writeFile(t, a, "a")
	writeFile(t, c, "c")
	env.project.Assets = []string{a, b, c}

	err := env.usecase().Run(context.Background(), &model.ReleaseRequest{Bump: model.BumpPatch, DryRun: true})
	gt.Error(t, err)

	var ge *goerr.Error
	gt.Value(t, errors.As(err, &ge)).Equal(true)
	gt.Value(t, ge.Values()["asset"]).Equal(b)
	gt.String(t, err.Error()).Contains("required asset missing")
}

func TestVerifyAssets_ErrorCarriesAbsolutePath(t *testing.T) {
	env := newTestEnv(t)
	missing := filepath.Join(env.dir, "nonexistent.bin")
	env.project.Assets = []string{missing}

	err := env.usecase().Run(context.Background(), &model.ReleaseRequest{Bump: model.BumpPatch, DryRun: true})
	gt.Error(t, err)

	var ge *goerr.Error
	gt.Value(t, errors.As(err, &ge)).Equal(true)
	expected, ok := ge.Values()["expected_path"].(string)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, filepath.IsAbs(expected)).Equal(true)
}

func TestVerifyAssets_AllPresent(t *testing.T) {
	env := newTestEnv(t)
	for _, a := range env.project.Assets {
		_, err := os.Stat(a)
		gt.NoError(t, err)
	}

	err := env.usecase().Run(context.Background(), &model.ReleaseRequest{Bump: model.BumpPatch, DryRun: true})
	gt.NoError(t, err)
}
