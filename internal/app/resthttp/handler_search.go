package resthttp

import (
	"net/http"

	"github.com/sir_venger/inventory_lite/pkg/httperrors"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

// postSearch читает id и has_photo из тела формы.
func (s *Server) postSearch(w http.ResponseWriter, r *http.Request) {
	if err := s.parseBody(r); err != nil {
		httperrors.Write(w, err)
		return
	}

	s.search(w, r,
		r.PostFormValue(inventoryproto.FieldID),
		truthy(r.PostFormValue(inventoryproto.FieldHasPhoto)),
	)
}

// getSearch читает id и includePhoto из query.
func (s *Server) getSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.search(w, r,
		q.Get(inventoryproto.FieldID),
		truthy(q.Get(inventoryproto.FieldIncludePhoto)),
	)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request, id string, withPhoto bool) {
	res, err := s.Inventory.Search(r.Context(), id, withPhoto)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
