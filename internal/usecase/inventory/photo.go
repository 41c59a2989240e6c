package inventory

import (
	"context"
	"errors"
	"io"

	"github.com/sir_venger/inventory_lite/internal/models"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

// PhotoStream открывает фото записи. Нет записи, нет фото, нет файла — всё это ErrNotFound.
func (s *Inventory) PhotoStream(ctx context.Context, id string) (io.ReadCloser, string, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	var stored string
	if idx >= 0 {
		stored = s.items[idx].StoredFileName
	}
	s.mu.Unlock()

	if idx < 0 || stored == "" {
		return nil, "", notFound(id)
	}

	rc, err := s.Storage.ReadPhoto(ctx, stored)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.Log.Warn(ctx, "photo file is missing", "id", id, "file", stored)
			return nil, "", notFound(id)
		}
		return nil, "", err
	}

	return rc, inventoryproto.PhotoContentType, nil
}
