// Package adapter contains filesystem and rule-file infrastructure for
// the regexrename CLI.
package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mass-rename/regexrename/internal/model"
)

// DirFS abstracts the directory operations the domain layer relies on
// when planning and applying renames. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type DirFS interface {
	// List returns the names of all entries in dir (files and
	// directories), sorted by name.
	List(dir m.Path) ([]string, error)

	// ListFiles returns the names of the non-directory entries in dir,
	// sorted by name.
	ListFiles(dir m.Path) ([]string, error)

	// Dirs returns dir and every directory below it, deepest first, so
	// entries inside a directory are processed before the directory's
	// own parent listing.
	Dirs(dir m.Path) ([]m.Path, error)

	// Exists reports whether path names an existing entry. Symlinks are
	// not followed.
	Exists(path m.Path) (bool, error)

	// Rename moves the entry at from to to.
	Rename(from, to m.Path) error
}

// LocalDirFS is the os-backed DirFS implementation.
type LocalDirFS struct{}

// NewLocalDirFS constructs a LocalDirFS ready to be wired into the
// workflow.
func NewLocalDirFS() *LocalDirFS {
	return &LocalDirFS{}
}

// List returns all entry names in dir, sorted.
func (a *LocalDirFS) List(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// ListFiles returns the non-directory entry names in dir, sorted.
func (a *LocalDirFS) ListFiles(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}

// Dirs walks the tree under dir and returns the directories deepest
// first.
func (a *LocalDirFS) Dirs(dir m.Path) ([]m.Path, error) {
	var dirs []m.Path

	err := filepath.WalkDir(string(dir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			dirs = append(dirs, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	// WalkDir visits parents before children; reversing the pre-order
	// puts every directory before its parent.
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}

	return dirs, nil
}

// Exists reports whether path exists, without following symlinks.
func (a *LocalDirFS) Exists(path m.Path) (bool, error) {
	_, err := os.Lstat(string(path))
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// Rename moves an entry in place.
func (a *LocalDirFS) Rename(from, to m.Path) error {
	return os.Rename(string(from), string(to))
}
