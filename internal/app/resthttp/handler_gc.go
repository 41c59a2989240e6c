package resthttp

import (
	"context"
	"net/http"
	"time"

	"github.com/sir_venger/inventory_lite/pkg/httperrors"
)

// gcOnce вручную запускает удаление фото-сирот.
func (s *Server) gcOnce(w http.ResponseWriter, r *http.Request) {
	if _, err := s.Sweep(r.Context()); err != nil {
		httperrors.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Sweep удаляет файлы фото, на которые не ссылается ни одна запись и которые старше Cfg.GCTTL.
func (s *Server) Sweep(ctx context.Context) (int, error) {
	removed, err := s.Inventory.SweepPhotos(ctx, func(ctx context.Context, keep map[string]struct{}) (int, error) {
		return s.Storage.SweepOrphans(ctx, keep, s.Cfg.GCTTL)
	})
	if err != nil {
		s.Log.Error(ctx, "orphan photo sweep failed", "error", err)
		return removed, err
	}
	if removed > 0 {
		s.Log.Info(ctx, "orphan photos removed", "count", removed)
	}
	return removed, nil
}

// RunGC периодически вызывает Sweep, пока не отменён ctx. every <= 0 выключает сборку.
func (s *Server) RunGC(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		return nil
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_, _ = s.Sweep(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}
