package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultFileMode os.FileMode = 0o644

// FileStore keeps the snapshot in a local file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Location returns the snapshot file path.
func (s *FileStore) Location() string {
	return s.path
}

// Load reads and decodes the snapshot file.
func (s *FileStore) Load(ctx context.Context) (map[int]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	return Decode(data)
}

// Save writes snap to a temporary file next to the destination and renames it
// into place, so readers never observe a partially written snapshot.
func (s *FileStore) Save(ctx context.Context, snap map[int]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(snap)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	// CreateTemp uses 0600; keep the mode of the snapshot being replaced.
	mode := defaultFileMode
	if fi, err := os.Stat(s.path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod snapshot %s: %w", tmpName, err)
	}

	if err := writeAndSync(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write snapshot %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}

	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
