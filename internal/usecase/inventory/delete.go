package inventory

import (
	"context"
	"fmt"
	"slices"
)

// Delete сначала удаляет файл фото, затем саму запись.
func (s *Inventory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return notFound(id)
	}

	if err := s.Storage.DeletePhoto(ctx, s.items[idx].StoredFileName); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}

	removed := s.items[idx]
	s.items = slices.Delete(s.items, idx, idx+1)
	if err := s.persist(ctx); err != nil {
		removed.StoredFileName = ""
		removed.Photo = nil
		s.items = slices.Insert(s.items, idx, removed)
		return err
	}

	s.Log.Info(ctx, "item deleted", "id", id)
	return nil
}
