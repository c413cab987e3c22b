// Package fs provides file system adapters for finding, hashing and storing
// origin files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root whose base name matches pattern.
// VCS metadata directories are skipped. Paths include root.
func (w *Walker) WalkFiles(root, pattern string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if matched, _ := filepath.Match(pattern, d.Name()); !matched {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string) bool {
	return name == ".git" || name == ".jj"
}
