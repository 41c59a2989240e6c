package resthttp

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sir_venger/inventory_lite/internal/models"
	"github.com/sir_venger/inventory_lite/pkg/httperrors"
)

// getPhoto отдаёт байты фото как есть.
func (s *Server) getPhoto(w http.ResponseWriter, r *http.Request) {
	rc, contentType, err := s.Inventory.PhotoStream(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, rc); err != nil {
		s.Log.Error(r.Context(), "stream photo", "error", err)
	}
}

// putPhoto заменяет фото записи. Без файла — 400, неизвестный id — 404.
func (s *Server) putPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := s.Inventory.Get(r.Context(), id); err != nil {
		httperrors.Write(w, err)
		return
	}

	if err := s.parseBody(r); err != nil {
		httperrors.Write(w, err)
		return
	}

	photo, release, err := photoFromRequest(r)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	defer release()

	if photo == nil {
		httperrors.Write(w, fmt.Errorf("photo file is required: %w", models.ErrValidation))
		return
	}

	item, err := s.Inventory.UpdatePhoto(r.Context(), id, photo)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
