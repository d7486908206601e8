package savefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/pocket-snake/internal/games/snake"
)

// File is a save slot on disk. It implements snake.Store.
type File struct {
	path string
}

// New returns a save slot at path. The path is used as given.
func New(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("savefile: empty path")
	}
	return &File{path: path}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the saved record. A missing file yields ErrNoSave.
func (f *File) Load() (snake.Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snake.Record{}, ErrNoSave
		}
		return snake.Record{}, fmt.Errorf("savefile: read %s: %w", f.path, err)
	}
	return Decode(data)
}

// Save writes rec, replacing any previous content.
func (f *File) Save(rec snake.Record) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("savefile: create directory: %w", err)
	}
	out, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("savefile: open %s: %w", f.path, err)
	}
	if _, err := out.Write(Encode(rec)); err != nil {
		out.Close() //nolint:errcheck
		return fmt.Errorf("savefile: write %s: %w", f.path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("savefile: close %s: %w", f.path, err)
	}
	return nil
}

// Remove deletes the save file. Removing a missing file is not an error.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("savefile: remove %s: %w", f.path, err)
	}
	return nil
}
