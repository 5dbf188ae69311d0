package docstore

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileBackend stores each document as a pretty-printed JSON file in a data
// directory.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.WithStack(err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, errors.WithStack(err)
	}
	return data, nil
}

func (b *FileBackend) Write(_ context.Context, name string, data []byte) error {
	// Write through a temp file so a crash mid-write can't truncate the
	// document.
	tmp := b.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil { //nolint:gosec
		return errors.WithStack(err)
	}
	return errors.WithStack(os.Rename(tmp, b.path(name)))
}
