package photos

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/sir_venger/inventory_lite/internal/models"
)

// MemoryStore держит фотографии в оперативной памяти; удобно для тестов.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string]memoryFile
}

type memoryFile struct {
	data    []byte
	modTime time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: map[string]memoryFile{}}
}

func (s *MemoryStore) Put(_ context.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = memoryFile{data: data, modTime: time.Now()}
	return nil
}

func (s *MemoryStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[name]
	if !ok {
		return nil, models.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.files))
	for name, f := range s.files {
		out = append(out, Entry{Name: name, ModTime: f.modTime})
	}
	return out, nil
}

// Has сообщает, лежит ли файл в хранилище.
func (s *MemoryStore) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[name]
	return ok
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Lister = (*MemoryStore)(nil)
)
