package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sir_venger/inventory_lite/internal/models"
)

// DirStore хранит фотографии файлами в одном каталоге.
type DirStore struct {
	dir string
}

// NewDirStore создаёт каталог при необходимости.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photos dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) Put(_ context.Context, name string, r io.Reader) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write photo: %w", err)
	}

	return f.Close()
}

func (s *DirStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, models.ErrNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *DirStore) Delete(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return nil
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// List перечисляет обычные файлы каталога.
func (s *DirStore) List(_ context.Context) ([]Entry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{Name: e.Name(), ModTime: info.ModTime()})
	}
	return out, nil
}

// path не даёт имени файла выйти за пределы каталога.
func (s *DirStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid photo name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

var (
	_ Store  = (*DirStore)(nil)
	_ Lister = (*DirStore)(nil)
)
