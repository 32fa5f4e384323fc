package busfleet

import (
	"net/http"

	"github.com/theoremus-urban-solutions/busfleet/fleet"
)

// indexData is the template context of the lookup page
type indexData struct {
	Agencies      []fleet.AgencySummary
	CSRFToken     string
	AllowedDomain string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Agencies:      s.registry.Agencies(),
		CSRFToken:     s.guard.Token,
		AllowedDomain: s.guard.ExpectedHost(r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log.Error("render index", "error", err)
	}
}
