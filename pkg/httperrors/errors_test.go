package httperrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sir_venger/inventory_lite/internal/models"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("name: %w", models.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("item %q: %w", "x", models.ErrNotFound), http.StatusNotFound},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Write(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, tc.want, Status(tc.err))
			assert.Contains(t, rec.Body.String(), tc.err.Error())
		})
	}
}
