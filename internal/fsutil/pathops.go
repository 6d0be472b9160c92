// Package fsutil provides the filesystem checks the file target needs
// before opening a log file.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DirPerm is the mode used for directories created on demand.
const DirPerm os.FileMode = 0o750

var (
	// ErrSymlink is returned when a symbolic link is found in a directory path.
	ErrSymlink = errors.New("symlink in path")
	// ErrNotDirectory is returned when a path segment exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// PathOps is the narrow filesystem interface used by file targets.
type PathOps interface {
	// Exists reports whether path is a regular file. Symlinks are not followed.
	Exists(path string) bool
	// IsSymlink reports whether path is a symbolic link.
	IsSymlink(path string) bool
	// EnsureDirectory creates dir and any missing parents.
	EnsureDirectory(dir string) error
}

// OS implements PathOps on the local filesystem.
type OS struct {
	// Perm is the mode for created directories (default: DirPerm)
	Perm os.FileMode
}

// Default is the PathOps used when none is configured.
var Default PathOps = OS{Perm: DirPerm}

// Exists reports whether path is a regular file
func (OS) Exists(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether path is a symbolic link
func (OS) IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// EnsureDirectory makes sure dir exists, creating it and its missing
// parents. Ancestors are inspected up to the first one that exists; a
// symlink among them fails with ErrSymlink. An empty dir is a no-op.
func (o OS) EnsureDirectory(dir string) error {
	if dir == "" {
		return nil
	}
	perm := o.Perm
	if perm == 0 {
		perm = DirPerm
	}
	return ensure(filepath.Clean(dir), perm)
}

func ensure(dir string, perm os.FileMode) error {
	info, err := os.Lstat(dir)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return errors.Wrap(ErrSymlink, dir)
		}
		if !info.IsDir() {
			return errors.Wrap(ErrNotDirectory, dir)
		}
		return nil
	case !os.IsNotExist(err):
		return errors.Wrapf(err, "stat %s", dir)
	}

	if parent := filepath.Dir(dir); parent != dir {
		if err := ensure(parent, perm); err != nil {
			return err
		}
	}

	if err := os.Mkdir(dir, perm); err != nil && !os.IsExist(err) {
		return errors.Wrapf(err, "mkdir %s", dir)
	}
	return nil
}
