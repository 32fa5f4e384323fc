package busfleet

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/theoremus-urban-solutions/busfleet/fleet"
)

// fleetResponse is the 200 body of /api/fleet
type fleetResponse struct {
	Spec        fleet.FleetSpec       `json:"spec"`
	AlsoFoundIn []fleet.AgencySummary `json:"also_found_in,omitempty"`
}

// suggestionDetail is the 404 detail when other agencies carry the number
type suggestionDetail struct {
	Message             string                `json:"message"`
	RequestedAgency     string                `json:"requested_agency"`
	SuggestedAgencies   []fleet.AgencySummary `json:"suggested_agencies"`
	SuggestedAgency     string                `json:"suggested_agency"`
	SuggestedAgencyName string                `json:"suggested_agency_name"`
}

type detailPayload struct {
	Detail any `json:"detail"`
}

// BuildResultPayload renders a lookup result as the HTTP status and body the
// web client expects. Errors from Lookup map through QueryErrorFrom first.
func BuildResultPayload(res fleet.LookupResult) (int, any) {
	switch res.Outcome {
	case fleet.Found:
		return http.StatusOK, fleetResponse{Spec: res.Spec, AlsoFoundIn: res.OtherAgencies}
	case fleet.NotFoundWithSuggestions:
		top, _ := res.TopSuggestion()
		return http.StatusNotFound, detailPayload{Detail: suggestionDetail{
			Message:             "Bus not found in " + res.Agency.DisplayName + ".",
			RequestedAgency:     res.Agency.Key,
			SuggestedAgencies:   res.OtherAgencies,
			SuggestedAgency:     top.Key,
			SuggestedAgencyName: top.DisplayName,
		}}
	default:
		return http.StatusNotFound, detailPayload{Detail: "Bus not found in fleet."}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response failed", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, detailPayload{Detail: detail})
}

func writeQueryError(w http.ResponseWriter, qe *QueryError) {
	if qe.RetryAfter != "" {
		w.Header().Set("Retry-After", qe.RetryAfter)
	}
	writeDetail(w, qe.Status, qe.Detail)
}
