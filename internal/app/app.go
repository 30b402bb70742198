// Package app wires the dependencies of rrepo and rdev. Everything is
// resolved once at startup and passed explicitly; there is no package
// level default instance.
package app

import (
	"github.com/statforge/rkit/internal/config"
	"github.com/statforge/rkit/internal/errors"
	"github.com/statforge/rkit/internal/repo"
	"github.com/statforge/rkit/internal/rexec"
	"github.com/statforge/rkit/internal/system"
)

// App holds the application dependencies
type App struct {
	// Config is the loaded configuration
	Config *config.Config

	// Runner executes R scripts
	Runner rexec.Runner

	// Repo performs repository filesystem operations
	Repo *repo.Repo

	// RscriptPath is the resolved interpreter path, empty when
	// resolution failed
	RscriptPath string

	fs         system.FileSystem
	exec       system.CommandExecutor
	resolveErr error
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets a custom config
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithRunner sets a custom runner
func WithRunner(r rexec.Runner) Option {
	return func(a *App) {
		a.Runner = r
	}
}

// WithFS sets a custom filesystem
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.exec = exec
	}
}

// WithRscriptPath pins the interpreter path, skipping resolution
func WithRscriptPath(path string) Option {
	return func(a *App) {
		a.RscriptPath = path
	}
}

// New creates a new App with the given options. Missing dependencies are
// filled in with real implementations; the interpreter is resolved here,
// once, and a failed resolution is remembered rather than fatal so that
// actions not needing R still work.
func New(opts ...Option) (*App, error) {
	a := &App{}

	for _, opt := range opts {
		opt(a)
	}

	if a.fs == nil {
		a.fs = system.DefaultFS()
	}
	if a.exec == nil {
		a.exec = system.DefaultExecutor()
	}

	if a.Config == nil {
		cfg, err := config.Load(config.DefaultPath())
		if err != nil {
			return nil, errors.ConfigError("failed to load config", err)
		}
		a.Config = cfg
	}

	if a.RscriptPath == "" {
		path, err := rexec.Resolve(a.Config, a.exec)
		if err != nil {
			a.resolveErr = err
		} else {
			a.RscriptPath = path
		}
	}

	if a.Runner == nil {
		extraArgs, err := a.Config.ExtraArgs()
		if err != nil {
			return nil, errors.ConfigError("invalid configuration", err)
		}
		a.Runner = rexec.NewExecRunner(a.RscriptPath, extraArgs, a.exec)
	}

	a.Repo = repo.New(a.fs)

	return a, nil
}

// RequireRuntime fails fast when the interpreter could not be resolved
// at startup. Every action that spawns R calls this first.
func (a *App) RequireRuntime() error {
	if a.RscriptPath == "" {
		if a.resolveErr != nil {
			return a.resolveErr
		}
		return errors.RuntimeNotFound(nil)
	}
	return nil
}
