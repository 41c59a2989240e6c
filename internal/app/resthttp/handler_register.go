package resthttp

import (
	"net/http"

	"github.com/sir_venger/inventory_lite/internal/models"
	"github.com/sir_venger/inventory_lite/pkg/httperrors"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

// postRegister создаёт запись из полей формы и необязательного файла photo.
func (s *Server) postRegister(w http.ResponseWriter, r *http.Request) {
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

	item, err := s.Inventory.Create(r.Context(), models.CreateRequest{
		Name:        r.PostFormValue(inventoryproto.FieldInventoryName),
		Description: r.PostFormValue(inventoryproto.FieldDescription),
		Photo:       photo,
	})
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}
