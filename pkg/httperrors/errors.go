package httperrors

import (
	"errors"
	"net/http"

	"github.com/sir_venger/inventory_lite/internal/models"
)

// Write переводит ошибку сервиса в HTTP-статус.
func Write(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), Status(err))
}

// Status возвращает код, который Write отдаст для err.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
