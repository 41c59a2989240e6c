package inventory

import (
	"context"
	"fmt"

	"github.com/sir_venger/inventory_lite/internal/models"
	"github.com/sir_venger/inventory_lite/internal/repo"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

// UpdateMetadata перезаписывает только непустые поля.
func (s *Inventory) UpdateMetadata(ctx context.Context, id, name, description string) (models.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ItemView{}, notFound(id)
	}

	prev := s.items[idx].Clone()
	if name != "" {
		s.items[idx].Name = name
	}
	if description != "" {
		s.items[idx].Description = description
	}

	if err := s.persist(ctx); err != nil {
		s.items[idx] = prev
		return models.ItemView{}, err
	}

	return s.items[idx].View(), nil
}

// UpdatePhoto заменяет фото записи: старый файл удаляется до записи нового.
func (s *Inventory) UpdatePhoto(ctx context.Context, id string, photo *models.PhotoUpload) (models.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ItemView{}, notFound(id)
	}
	if photo == nil {
		return models.ItemView{}, fmt.Errorf("photo is required: %w", models.ErrValidation)
	}

	item := &s.items[idx]
	if item.HasPhoto() {
		if err := s.Storage.DeletePhoto(ctx, item.StoredFileName); err != nil {
			return models.ItemView{}, fmt.Errorf("delete old photo: %w", err)
		}
		item.StoredFileName = ""
		item.Photo = nil
	}

	name, err := s.Storage.WritePhoto(ctx, photo.Reader, repo.PhotoExt(photo.FileName))
	if err != nil {
		// старого файла уже нет, документ должен это отражать
		_ = s.persist(ctx)
		return models.ItemView{}, fmt.Errorf("store photo: %w", err)
	}

	item.StoredFileName = name
	ref := inventoryproto.PhotoPath(item.ID)
	item.Photo = &ref

	if err := s.persist(ctx); err != nil {
		return models.ItemView{}, err
	}

	s.Log.Info(ctx, "item photo replaced", "id", id)
	return item.View(), nil
}
