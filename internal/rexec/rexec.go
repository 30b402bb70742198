// Package rexec runs fixed R script strings through the Rscript
// interpreter. The Runner interface is the only seam between the CLIs
// and the external runtime, so tests substitute a mock instead of
// spawning real processes.
package rexec

import (
	"context"

	"github.com/statforge/rkit/internal/config"
	"github.com/statforge/rkit/internal/errors"
	"github.com/statforge/rkit/internal/system"
)

// InterpreterName is the executable looked up on PATH when no explicit
// interpreter is configured.
const InterpreterName = "Rscript"

// Runner executes one R script in a working directory and reports how it
// went. A nil return means the interpreter exited 0. A non-zero exit
// comes back as an error carrying that exact code; a process that could
// not be spawned comes back as a general error.
type Runner interface {
	Run(ctx context.Context, dir, script string) error
}

// Resolve determines the interpreter path once at startup. Order:
// explicit config value (or RKIT_RSCRIPT, already folded into the
// config), then PATH lookup.
func Resolve(cfg *config.Config, exec system.CommandExecutor) (string, error) {
	if cfg.Rscript != "" {
		return cfg.Rscript, nil
	}
	path, err := exec.LookPath(InterpreterName)
	if err != nil {
		return "", errors.RuntimeNotFound(err)
	}
	return path, nil
}
