package busfleet

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/theoremus-urban-solutions/busfleet/fleet"
)

// QueryError is a request failure carrying its HTTP status and the detail
// value placed under "detail" in the response body.
type QueryError struct {
	Status     int
	Detail     any
	RetryAfter string
}

func (e *QueryError) Error() string {
	if s, ok := e.Detail.(string); ok {
		return s
	}
	return http.StatusText(e.Status)
}

// missingParam mirrors the validation item shape the web client tolerates
type missingParam struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// fleetQuery holds the raw /api/fleet parameters. Values are passed to the
// registry untouched; normalisation belongs to the lookup.
type fleetQuery struct {
	Agency string
	BusID  string
}

// parseFleetQuery requires both agency and busId to be present. An empty
// value is present and is left for the lookup to reject.
func parseFleetQuery(q url.Values) (fleetQuery, error) {
	var missing []missingParam
	for _, name := range []string{"agency", "busId"} {
		if !q.Has(name) {
			missing = append(missing, missingParam{
				Loc:  []string{"query", name},
				Msg:  "Field required",
				Type: "missing",
			})
		}
	}
	if len(missing) > 0 {
		return fleetQuery{}, &QueryError{Status: http.StatusUnprocessableEntity, Detail: missing}
	}
	return fleetQuery{Agency: q.Get("agency"), BusID: q.Get("busId")}, nil
}

// QueryErrorFrom maps a lookup error to its HTTP form. Unknown errors are 500.
func QueryErrorFrom(err error) *QueryError {
	var qe *QueryError
	switch {
	case errors.As(err, &qe):
		return qe
	case errors.Is(err, fleet.ErrAgencyNotFound):
		return &QueryError{Status: http.StatusNotFound, Detail: err.Error()}
	case errors.Is(err, fleet.ErrInvalidIdentifier):
		return &QueryError{Status: http.StatusBadRequest, Detail: err.Error()}
	default:
		return &QueryError{Status: http.StatusInternalServerError, Detail: "Internal server error."}
	}
}
