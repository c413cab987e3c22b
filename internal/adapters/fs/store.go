package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/origin/internal/core/origin"
	"go.trai.ch/origin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OriginStore = (*Store)(nil)

const defaultFileMode = 0o644

// Store implements ports.OriginStore on the local file system.
type Store struct {
	walker *Walker
	hasher *Hasher
}

// NewStore creates a new Store.
func NewStore(walker *Walker, hasher *Hasher) *Store {
	return &Store{walker: walker, hasher: hasher}
}

// Load reads and parses the origin file at path.
func (s *Store) Load(path string) (*origin.Origin, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read origin file"), "path", path)
	}

	o, err := origin.ParseBytes(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse origin file"), "path", path)
	}
	return o, nil
}

// Save writes o to path through a temporary file and rename, so readers never
// observe a partial document. A file that already holds the same bytes is not
// rewritten.
func (s *Store) Save(path string, o *origin.Origin) (bool, error) {
	data, err := o.Bytes()
	if err != nil {
		return false, zerr.With(err, "path", path)
	}

	mode := iofs.FileMode(defaultFileMode)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
		current, hashErr := s.hasher.ComputeFileHash(path)
		if hashErr == nil && current == s.hasher.ComputeHash(data) {
			return false, nil
		}
	case !errors.Is(err, iofs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, "failed to stat origin file"), "path", path)
	}

	if err := writeAtomic(path, data, mode); err != nil {
		return false, zerr.With(err, "path", path)
	}
	return true, nil
}

func writeAtomic(path string, data []byte, mode iofs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for origin file")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temporary file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to sync temporary file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temporary file")
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return zerr.Wrap(err, "failed to set file mode")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to replace origin file")
	}
	return nil
}

// List returns the files below dir whose base name matches pattern, sorted.
func (s *Store) List(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid pattern"), "pattern", pattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read deployments directory"), "dir", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.New("not a directory"), "dir", dir)
	}

	return slices.Sorted(s.walker.WalkFiles(dir, pattern)), nil
}
