package cargo

import (
	"context"

	"github.com/epdisplay/release/pkg/domain/interfaces"
	"github.com/epdisplay/release/pkg/domain/types"
	"github.com/epdisplay/release/pkg/utils/cmdx"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type builder struct {
	dir string
}

// NewBuilder creates a BuildRunner that shells out to cargo in the process
// working directory.
func NewBuilder() interfaces.BuildRunner {
	return &builder{}
}

// Build runs a release-profile cross build. cargo writes the binary under
// target/<triple>/release/, which the default asset list points at.
func (b *builder) Build(ctx context.Context, target string) error {
	logger := ctxlog.From(ctx)
	logger.Info("building release binary", "target", target)

	if _, err := cmdx.Run(ctx, b.dir, "cargo", "build", "--release", "--target", target); err != nil {
		return goerr.Wrap(err, "cargo build failed",
			goerr.V("target", target),
			goerr.T(types.ErrTagBuild),
		)
	}
	return nil
}
