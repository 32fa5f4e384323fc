package fleet

import (
	"fmt"
	"strings"
)

// Registry is an immutable, ordered set of agency fleets
type Registry struct {
	agencies []AgencyFleet
	byKey    map[string]int // key -> index in agencies
}

// NewRegistry validates fleets and builds a registry that keeps their order.
// Keys must be non-empty, upper case and unique; every range needs Lo <= Hi
// and a known propulsion type.
func NewRegistry(fleets ...AgencyFleet) (*Registry, error) {
	r := &Registry{
		agencies: make([]AgencyFleet, 0, len(fleets)),
		byKey:    make(map[string]int, len(fleets)),
	}
	for _, f := range fleets {
		if f.Key == "" {
			return nil, &RegistryError{Index: -1, Msg: "agency key is empty"}
		}
		if f.Key != NormalizeKey(f.Key) {
			return nil, &RegistryError{Agency: f.Key, Index: -1, Msg: "agency key must be upper case without surrounding spaces"}
		}
		if _, dup := r.byKey[f.Key]; dup {
			return nil, &RegistryError{Agency: f.Key, Index: -1, Msg: "duplicate agency key"}
		}
		for i, rg := range f.ranges {
			if rg.Lo > rg.Hi {
				return nil, &RegistryError{Agency: f.Key, Index: i, Msg: fmt.Sprintf("lo %d is greater than hi %d", rg.Lo, rg.Hi)}
			}
			if !rg.Spec.Propulsion.Valid() {
				return nil, &RegistryError{Agency: f.Key, Index: i, Msg: "unknown propulsion type"}
			}
		}
		r.byKey[f.Key] = len(r.agencies)
		r.agencies = append(r.agencies, NewAgencyFleet(f.Key, f.DisplayName, f.ranges))
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for compiled-in datasets; a defect panics
func MustNewRegistry(fleets ...AgencyFleet) *Registry {
	r, err := NewRegistry(fleets...)
	if err != nil {
		panic(err)
	}
	return r
}

// NormalizeKey trims and upper-cases an agency key
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// Agency resolves a key case-insensitively
func (r *Registry) Agency(key string) (AgencyFleet, bool) {
	i, ok := r.byKey[NormalizeKey(key)]
	if !ok {
		return AgencyFleet{}, false
	}
	return r.agencies[i], true
}

// Agencies lists agencies in registry order
func (r *Registry) Agencies() []AgencySummary {
	out := make([]AgencySummary, 0, len(r.agencies))
	for _, a := range r.agencies {
		out = append(out, a.Summary())
	}
	return out
}

// Fleets returns the agency fleets in registry order
func (r *Registry) Fleets() []AgencyFleet {
	out := make([]AgencyFleet, len(r.agencies))
	copy(out, r.agencies)
	return out
}

// Len returns the number of agencies
func (r *Registry) Len() int { return len(r.agencies) }

// RangeCount returns the total number of ranges across agencies
func (r *Registry) RangeCount() int {
	n := 0
	for _, a := range r.agencies {
		n += len(a.ranges)
	}
	return n
}
