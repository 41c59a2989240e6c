package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sir_venger/inventory_lite/internal/models"
	"github.com/sir_venger/inventory_lite/internal/repo"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

// Create регистрирует новую запись. Фото, если есть, пишется до сохранения документа,
// под той же блокировкой, что и очистка сирот, иначе очистка может удалить ещё не привязанный файл.
func (s *Inventory) Create(ctx context.Context, req models.CreateRequest) (models.ItemView, error) {
	if req.Name == "" {
		return models.ItemView{}, fmt.Errorf("inventory name is required: %w", models.ErrValidation)
	}

	item := models.Item{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Photo != nil {
		name, err := s.Storage.WritePhoto(ctx, req.Photo.Reader, repo.PhotoExt(req.Photo.FileName))
		if err != nil {
			return models.ItemView{}, fmt.Errorf("store photo: %w", err)
		}
		item.StoredFileName = name
		ref := inventoryproto.PhotoPath(item.ID)
		item.Photo = &ref
	}

	s.items = append(s.items, item)
	if err := s.persist(ctx); err != nil {
		s.items = s.items[:len(s.items)-1]
		_ = s.Storage.DeletePhoto(ctx, item.StoredFileName)
		return models.ItemView{}, err
	}

	s.Log.Info(ctx, "item created", "id", item.ID, "photo", item.HasPhoto())
	return item.View(), nil
}
