package rrepo

import (
	"context"

	"github.com/statforge/rkit/internal/app"
	"github.com/statforge/rkit/internal/logging"
	"github.com/statforge/rkit/internal/rexec"
)

// runNew prepares path as an empty repository directory and has R write
// the initial index. Nothing is mutated when the directory is unusable.
func runNew(a *app.App, path string) error {
	if err := a.RequireRuntime(); err != nil {
		return err
	}
	if err := a.Repo.EnsureNew(path); err != nil {
		return err
	}

	logging.UserInfo("Building repository index in %s...", path)
	if err := a.Runner.Run(context.Background(), path, rexec.ScriptWriteIndex); err != nil {
		return err
	}

	logging.UserSuccess("Repository %s initialized", path)
	return nil
}

// runAdd copies a source tarball into the repository and refreshes the
// index.
func runAdd(a *app.App, path, pkgPath string) error {
	if err := a.RequireRuntime(); err != nil {
		return err
	}
	if err := a.Repo.Require(path); err != nil {
		return err
	}

	dest, err := a.Repo.InsertPackage(path, pkgPath)
	if err != nil {
		return err
	}
	logging.Debug("package copied", "dest", dest)

	if err := a.Runner.Run(context.Background(), path, rexec.ScriptWriteIndex); err != nil {
		return err
	}

	logging.UserSuccess("Added %s to repository %s", pkgPath, path)
	return nil
}

// runUpdate refreshes the index of an existing repository.
func runUpdate(a *app.App, path string) error {
	if err := a.RequireRuntime(); err != nil {
		return err
	}
	if err := a.Repo.Require(path); err != nil {
		return err
	}

	if err := a.Runner.Run(context.Background(), path, rexec.ScriptWriteIndex); err != nil {
		return err
	}

	logging.UserSuccess("Repository %s index updated", path)
	return nil
}

// runInfo prints the resolved interpreter and its session information.
func runInfo(a *app.App) error {
	if err := a.RequireRuntime(); err != nil {
		return err
	}

	logging.UserInfo("Using %s", a.RscriptPath)
	return a.Runner.Run(context.Background(), ".", rexec.ScriptSessionInfo)
}
