package resthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sir_venger/inventory_lite/pkg/httperrors"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

type deleteResp struct {
	Message string `json:"message"`
}

func (s *Server) listInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Inventory.List(r.Context()))
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.Inventory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// putItem обновляет name/description; пустые значения поля не меняют.
func (s *Server) putItem(w http.ResponseWriter, r *http.Request) {
	if err := s.parseBody(r); err != nil {
		httperrors.Write(w, err)
		return
	}

	item, err := s.Inventory.UpdateMetadata(
		r.Context(),
		chi.URLParam(r, "id"),
		r.PostFormValue(inventoryproto.FieldName),
		r.PostFormValue(inventoryproto.FieldDescription),
	)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.Inventory.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResp{Message: inventoryproto.DeletedMessage})
}
