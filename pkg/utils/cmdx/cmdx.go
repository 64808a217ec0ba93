package cmdx

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Run executes an external command synchronously and returns its stdout with
// trailing whitespace trimmed. dir is the working directory; "" inherits the
// caller's. On a non-zero exit the captured stdout and stderr travel with
// the error so the operator sees the collaborator's own diagnostics.
func Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	logger := ctxlog.From(ctx)
	logger.Debug("running command", "name", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), goerr.Wrap(err, "command failed",
			goerr.V("command", name+" "+strings.Join(args, " ")),
			goerr.V("stdout", stdout.String()),
			goerr.V("stderr", stderr.String()),
		)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}
