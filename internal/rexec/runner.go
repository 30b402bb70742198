package rexec

import (
	"context"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/statforge/rkit/internal/errors"
	"github.com/statforge/rkit/internal/logging"
	"github.com/statforge/rkit/internal/system"
)

// ExecRunner runs scripts through a real Rscript process. Stdout and
// stderr of the child stream through to the terminal untouched; there is
// no timeout and no retry.
type ExecRunner struct {
	// RscriptPath is the resolved interpreter path.
	RscriptPath string

	// ExtraArgs are interpreter arguments inserted before -e.
	ExtraArgs []string

	exec system.CommandExecutor
}

// NewExecRunner creates an ExecRunner using the given executor.
func NewExecRunner(rscriptPath string, extraArgs []string, exec system.CommandExecutor) *ExecRunner {
	return &ExecRunner{
		RscriptPath: rscriptPath,
		ExtraArgs:   extraArgs,
		exec:        exec,
	}
}

// exitCoder is implemented by exec.ExitError and by test doubles.
type exitCoder interface {
	ExitCode() int
}

// Run executes one script in dir and blocks until the interpreter exits.
// The interpreter always runs with --vanilla so site and user profiles
// cannot change script behavior; ExtraArgs follow it.
func (r *ExecRunner) Run(ctx context.Context, dir, script string) error {
	args := append([]string{"--vanilla"}, r.ExtraArgs...)
	args = append(args, "-e", script)

	logging.Debug("running R script",
		"command", shellquote.Join(append([]string{r.RscriptPath}, args...)...),
		"dir", dir)

	err := r.exec.ExecuteInteractive(ctx, dir, r.RscriptPath, args...)
	if err == nil {
		return nil
	}

	var exit exitCoder
	if errors.As(err, &exit) && exit.ExitCode() > 0 {
		return errors.ExternalFailure(exit.ExitCode(), script)
	}
	return errors.SpawnFailed(err)
}
