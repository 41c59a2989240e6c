package resthttp

import "net/http"

// healthStats — payload ответа /health.
type healthStats struct {
	OK    bool `json:"ok"`
	Items int  `json:"items"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthStats{
		OK:    true,
		Items: s.Inventory.Count(),
	})
}
