package busfleet

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/theoremus-urban-solutions/busfleet"

// handleFleet answers GET /api/fleet?agency=&busId=. The guard and rate
// limit run as middleware in front of it.
func (s *Server) handleFleet(w http.ResponseWriter, r *http.Request) {
	q, err := parseFleetQuery(r.URL.Query())
	if err != nil {
		writeQueryError(w, QueryErrorFrom(err))
		return
	}

	_, span := otel.Tracer(tracerName).Start(r.Context(), "fleet.Lookup")
	defer span.End()
	span.SetAttributes(
		attribute.String("fleet.agency", q.Agency),
		attribute.String("fleet.bus_id", q.BusID),
	)

	res, err := s.registry.Lookup(q.Agency, q.BusID)
	if err != nil {
		qe := QueryErrorFrom(err)
		span.SetStatus(codes.Error, qe.Error())
		s.log.Debug("fleet lookup rejected",
			"agency", q.Agency,
			"bus_id", q.BusID,
			"status", qe.Status,
			"request_id", RequestIDFrom(r.Context()),
		)
		writeQueryError(w, qe)
		return
	}

	span.SetAttributes(
		attribute.String("fleet.outcome", res.Outcome.String()),
		attribute.Int("fleet.other_agencies", len(res.OtherAgencies)),
	)
	s.log.Debug("fleet lookup",
		"agency", res.Agency.Key,
		"bus_id", res.BusID,
		"outcome", res.Outcome.String(),
		"request_id", RequestIDFrom(r.Context()),
	)
	status, body := BuildResultPayload(res)
	writeJSON(w, status, body)
}

// handleAgencies lists the agencies in registry order
func (s *Server) handleAgencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Agencies())
}

// guarded wraps h with the request guard
func (s *Server) guarded(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if qe := s.guard.Check(r); qe != nil {
			s.log.Warn("request rejected",
				"path", r.URL.Path,
				"status", qe.Status,
				"reason", qe.Error(),
				"request_id", RequestIDFrom(r.Context()),
			)
			writeQueryError(w, qe)
			return
		}
		h.ServeHTTP(w, r)
	})
}
