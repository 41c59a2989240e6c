package inventory

import (
	"context"
	"fmt"

	"github.com/sir_venger/inventory_lite/internal/models"
)

const photoSuffixFormat = "\nPhoto: %s"

// Search ищет запись по id. При withPhoto к описанию дописывается ссылка на фото, если оно есть.
func (s *Inventory) Search(_ context.Context, id string, withPhoto bool) (models.SearchResult, error) {
	if id == "" {
		return models.SearchResult{}, fmt.Errorf("id is required: %w", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.SearchResult{}, notFound(id)
	}

	it := s.items[idx]
	res := models.SearchResult{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
	}
	if withPhoto && it.Photo != nil {
		res.Description += fmt.Sprintf(photoSuffixFormat, *it.Photo)
	}

	return res, nil
}
