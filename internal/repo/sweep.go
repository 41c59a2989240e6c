package repo

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sir_venger/inventory_lite/internal/repo/photos"
)

// SweepOrphans удаляет файлы фото, на которые не ссылается ни одна запись
// и которые старше ttl. Такие файлы остаются, если процесс упал между записью фото и сохранением документа.
// Возвращает число удалённых файлов. Бэкенды без перечисления пропускаются.
func (s *Storage) SweepOrphans(ctx context.Context, keep map[string]struct{}, ttl time.Duration) (int, error) {
	lister, ok := s.photos.(photos.Lister)
	if !ok {
		return 0, nil
	}

	entries, err := lister.List(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	removed := 0
	for _, e := range entries {
		if !isPhotoName(e.Name) {
			continue
		}
		if _, used := keep[e.Name]; used {
			continue
		}
		if now.Sub(e.ModTime) < ttl {
			continue
		}
		if err := s.photos.Delete(ctx, e.Name); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// isPhotoName: имя вида <uuid><ext>, как его строит WritePhoto. Всё остальное
// в каталоге (документ, чужие файлы) очистка не трогает.
func isPhotoName(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if len(stem) != 36 {
		return false
	}
	_, err := uuid.Parse(stem)
	return err == nil
}
