package fleet

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseBusID converts a fleet number to an integer. Surrounding whitespace
// and a leading sign are accepted and leading zeros read as decimal.
func ParseBusID(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &IdentifierError{Input: s}
	}
	return v, nil
}

// CoerceBusID accepts a string, any integer kind, an integral float or a
// json.Number. Anything else, including nil and fractional floats, fails.
func CoerceBusID(v any) (int, error) {
	switch x := v.(type) {
	case string:
		return ParseBusID(x)
	case json.Number:
		return ParseBusID(x.String())
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			break
		}
		return int(x), nil
	case uint:
		if uint64(x) > math.MaxInt {
			break
		}
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		if uint64(x) > math.MaxInt {
			break
		}
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			break
		}
		return int(x), nil
	case float32:
		return floatToID(float64(x), v)
	case float64:
		return floatToID(x, v)
	}
	return 0, &IdentifierError{Input: v}
}

func floatToID(f float64, orig any) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &IdentifierError{Input: orig}
	}
	return int(f), nil
}

// FindSpec scans ranges in order and returns the spec of the first one
// containing id. An earlier range wins over a later overlapping one.
func FindSpec(id int, ranges []FleetRange) (FleetSpec, bool) {
	for _, r := range ranges {
		if r.Contains(id) {
			return r.Spec, true
		}
	}
	return FleetSpec{}, false
}

// FindOtherAgencies lists, in registry order, every agency other than
// excludeKey with at least one range containing id.
func (r *Registry) FindOtherAgencies(id int, excludeKey string) []AgencySummary {
	excludeKey = NormalizeKey(excludeKey)
	var out []AgencySummary
	for _, a := range r.agencies {
		if a.Key == excludeKey {
			continue
		}
		if a.covers(id) {
			out = append(out, a.Summary())
		}
	}
	return out
}

// Outcome is the kind of a successful lookup
type Outcome int

const (
	// Found means the requested agency has a range for the number
	Found Outcome = iota
	// NotFoundWithSuggestions means other agencies cover the number
	NotFoundWithSuggestions
	// NotFound means no agency covers the number
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFoundWithSuggestions:
		return "not_found_with_suggestions"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// LookupResult is the outcome of Registry.Lookup.
//
// For Found, Spec is set and OtherAgencies lists agencies that reuse the same
// number. For NotFoundWithSuggestions, OtherAgencies holds the suggestions.
// For NotFound, OtherAgencies is empty.
type LookupResult struct {
	Outcome       Outcome
	Agency        AgencySummary
	BusID         int
	Spec          FleetSpec
	OtherAgencies []AgencySummary
}

// TopSuggestion returns the first suggested agency of a miss
func (r LookupResult) TopSuggestion() (AgencySummary, bool) {
	if r.Outcome != NotFoundWithSuggestions || len(r.OtherAgencies) == 0 {
		return AgencySummary{}, false
	}
	return r.OtherAgencies[0], true
}

// Lookup resolves agencyKey (trimmed, case-insensitive), parses busID and
// searches the agency, then the other agencies. Errors are
// *AgencyNotFoundError or *IdentifierError; a miss is not an error.
func (r *Registry) Lookup(agencyKey, busID string) (LookupResult, error) {
	return r.LookupID(agencyKey, busID)
}

// LookupID is Lookup for identifiers that may not be strings, see CoerceBusID
func (r *Registry) LookupID(agencyKey string, busID any) (LookupResult, error) {
	agency, ok := r.Agency(agencyKey)
	if !ok {
		return LookupResult{}, &AgencyNotFoundError{Key: NormalizeKey(agencyKey)}
	}
	id, err := CoerceBusID(busID)
	if err != nil {
		return LookupResult{}, err
	}
	res := LookupResult{
		Agency:        agency.Summary(),
		BusID:         id,
		OtherAgencies: r.FindOtherAgencies(id, agency.Key),
	}
	spec, found := agency.FindSpec(id)
	switch {
	case found:
		res.Outcome = Found
		res.Spec = spec
	case len(res.OtherAgencies) > 0:
		res.Outcome = NotFoundWithSuggestions
	default:
		res.Outcome = NotFound
	}
	return res, nil
}
