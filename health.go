package busfleet

import (
	"net/http"

	"github.com/theoremus-urban-solutions/busfleet/utils"
)

type healthResponse struct {
	Status    string `json:"status"`
	Agencies  int    `json:"agencies"`
	Ranges    int    `json:"ranges"`
	StartedAt string `json:"started_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Agencies:  s.registry.Len(),
		Ranges:    s.registry.RangeCount(),
		StartedAt: utils.Iso8601(s.started),
	})
}
