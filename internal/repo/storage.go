// Package repo отвечает за долговременное хранение коллекции: JSON-документ и файлы фотографий.
package repo

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sir_venger/inventory_lite/internal/models"
	"github.com/sir_venger/inventory_lite/internal/repo/photos"
)

const defaultPhotoExt = ".jpg"

// Storage объединяет документ коллекции и хранилище фотографий.
// Кроме него никто не пишет ни в документ, ни в каталог фото.
type Storage struct {
	doc    *Document
	photos photos.Store
}

func NewStorage(doc *Document, ps photos.Store) *Storage {
	return &Storage{doc: doc, photos: ps}
}

func (s *Storage) Load(ctx context.Context) ([]models.Item, error) {
	return s.doc.Load(ctx)
}

func (s *Storage) Save(ctx context.Context, items []models.Item) error {
	return s.doc.Save(ctx, items)
}

// WritePhoto сохраняет фото под новым именем <uuid><ext> и возвращает это имя.
func (s *Storage) WritePhoto(ctx context.Context, r io.Reader, ext string) (string, error) {
	name := uuid.NewString() + normalizeExt(ext)
	if err := s.photos.Put(ctx, name, r); err != nil {
		return "", err
	}
	return name, nil
}

// DeletePhoto идемпотентен; пустое имя ничего не делает.
func (s *Storage) DeletePhoto(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	return s.photos.Delete(ctx, name)
}

func (s *Storage) ReadPhoto(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" {
		return nil, models.ErrNotFound
	}
	return s.photos.Open(ctx, name)
}

// PhotoExt достаёт расширение из исходного имени файла.
func PhotoExt(fileName string) string {
	return normalizeExt(filepath.Ext(fileName))
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || ext == "." {
		return defaultPhotoExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	// имя файла на диске не должно зависеть от клиента сильнее, чем расширение
	if strings.ContainsAny(ext, `/\`) {
		return defaultPhotoExt
	}
	return ext
}
