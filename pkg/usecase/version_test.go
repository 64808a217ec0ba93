package usecase_test

import (
	"testing"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestResolveVersion_Explicit(t *testing.T) {
	current, err := model.ParseVersion("1.0.0")
	gt.NoError(t, err)

	v, err := usecase.ResolveVersion(current, &model.ReleaseRequest{ExplicitVersion: "2.5.0"})
	gt.NoError(t, err)
	gt.Value(t, v.String()).Equal("2.5.0")
}

func TestResolveVersion_Bump(t *testing.T) {
	current, err := model.ParseVersion("1.2.9")
	gt.NoError(t, err)

	v, err := usecase.ResolveVersion(current, &model.ReleaseRequest{Bump: model.BumpMinor})
	gt.NoError(t, err)
	gt.Value(t, v.String()).Equal("1.3.0")
}

func TestResolveVersion_BothRejected(t *testing.T) {
	current, err := model.ParseVersion("1.0.0")
	gt.NoError(t, err)

	_, err = usecase.ResolveVersion(current, &model.ReleaseRequest{
		ExplicitVersion: "2.0.0",
		Bump:            model.BumpPatch,
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("not both")
}

func TestResolveVersion_NeitherRejected(t *testing.T) {
	current, err := model.ParseVersion("1.0.0")
	gt.NoError(t, err)

	_, err = usecase.ResolveVersion(current, &model.ReleaseRequest{})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("no version specified")
}

func TestResolveVersion_InvalidExplicit(t *testing.T) {
	current, err := model.ParseVersion("1.0.0")
	gt.NoError(t, err)

	for _, bad := range []string{"v2.0.0", "2.0", "2.0.0.0"} {
		_, err := usecase.ResolveVersion(current, &model.ReleaseRequest{ExplicitVersion: bad})
		gt.Error(t, err)
	}
}
