// Package repo implements local package repository checks and
// initialization. A directory is a repository when it carries the
// PACKAGES index file; the index itself is written by R, never by this
// package.
package repo

import (
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/statforge/rkit/internal/errors"
	"github.com/statforge/rkit/internal/system"
)

// MarkerFile is the well-known filename whose presence marks a directory
// as an initialized package repository.
const MarkerFile = "PACKAGES"

// Repo performs repository filesystem operations.
type Repo struct {
	fs system.FileSystem
}

// New creates a Repo using the given filesystem.
func New(fs system.FileSystem) *Repo {
	return &Repo{fs: fs}
}

// IsRepo reports whether dir carries the repository marker. It never
// mutates anything.
func (r *Repo) IsRepo(dir string) bool {
	return r.fs.Exists(filepath.Join(dir, MarkerFile))
}

// Require returns a typed error when dir is not a repository.
func (r *Repo) Require(dir string) error {
	if !r.IsRepo(dir) {
		return errors.NotARepository(dir)
	}
	return nil
}

// EnsureNew prepares dir to become a new repository. It fails without
// touching the filesystem when dir is already a repository, exists as a
// non-directory, or exists as a non-empty directory. A missing dir is
// created along with any missing parents.
func (r *Repo) EnsureNew(dir string) error {
	if r.IsRepo(dir) {
		return errors.AlreadyRepository(dir)
	}

	if !r.fs.Exists(dir) {
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to create %s", dir), err)
		}
		return nil
	}

	if !r.fs.IsDir(dir) {
		return errors.BadTargetPath(dir, "not a directory")
	}

	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to read %s", dir), err)
	}
	if len(entries) > 0 {
		return errors.BadTargetPath(dir, "directory is not empty")
	}
	return nil
}

// InsertPackage copies a source package tarball into the repository and
// returns the destination path. The destination filename is contained to
// the repository directory.
func (r *Repo) InsertPackage(dir, pkgPath string) (string, error) {
	if !r.fs.Exists(pkgPath) {
		return "", errors.ValidationError(fmt.Sprintf("package file %s does not exist", pkgPath))
	}
	if !strings.HasSuffix(pkgPath, ".tar.gz") {
		return "", errors.ValidationError(fmt.Sprintf("package file %s is not a source tarball (.tar.gz)", pkgPath))
	}

	dest, err := securejoin.SecureJoin(dir, filepath.Base(pkgPath))
	if err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "invalid package filename", err)
	}

	if err := r.fs.CopyFile(pkgPath, dest); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to copy %s into repository", pkgPath), err)
	}
	return dest, nil
}
