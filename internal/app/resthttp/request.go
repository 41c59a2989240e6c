package resthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sir_venger/inventory_lite/internal/models"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

// parseBody разбирает тело как multipart или urlencoded форму.
func (s *Server) parseBody(r *http.Request) error {
	err := r.ParseMultipartForm(s.Cfg.MaxUploadBytes())
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("parse form: %v: %w", err, models.ErrValidation)
	}
	return nil
}

// photoFromRequest возвращает первый файл из поля photo или nil. Остальные файлы игнорируются.
// Вызывающий обязан вызвать release.
func photoFromRequest(r *http.Request) (upload *models.PhotoUpload, release func(), err error) {
	release = func() {}
	if r.MultipartForm == nil {
		return nil, release, nil
	}

	headers := r.MultipartForm.File[inventoryproto.FieldPhoto]
	if len(headers) == 0 {
		return nil, release, nil
	}

	f, err := headers[0].Open()
	if err != nil {
		return nil, release, fmt.Errorf("open uploaded photo: %w", err)
	}

	return &models.PhotoUpload{Reader: f, FileName: headers[0].Filename}, func() { _ = f.Close() }, nil
}

// truthy трактует значения флагов форм и query-параметров.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
