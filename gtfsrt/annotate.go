package gtfsrt

import (
	"errors"

	"github.com/theoremus-urban-solutions/busfleet/fleet"
)

// AnnotatedVehicle pairs a feed vehicle with its lookup outcome. Spec is set
// only when the number resolved in the requested agency.
type AnnotatedVehicle struct {
	Vehicle       Vehicle               `json:"vehicle"`
	FleetNumber   string                `json:"fleet_number"`
	Outcome       string                `json:"outcome"`
	Spec          *fleet.FleetSpec      `json:"spec,omitempty"`
	OtherAgencies []fleet.AgencySummary `json:"other_agencies,omitempty"`
}

// OutcomeInvalidNumber marks vehicles whose label is not a fleet number
const OutcomeInvalidNumber = "invalid_number"

// Summary counts annotation outcomes
type Summary struct {
	Total     int `json:"total"`
	Matched   int `json:"matched"`
	Suggested int `json:"suggested"`
	Unmatched int `json:"unmatched"`
}

// Annotate looks up every vehicle in feed against agencyKey. Vehicles whose
// number does not parse are reported, not fatal; an unknown agency is.
func Annotate(reg *fleet.Registry, agencyKey string, feed Feed) ([]AnnotatedVehicle, error) {
	if _, ok := reg.Agency(agencyKey); !ok {
		return nil, &fleet.AgencyNotFoundError{Key: fleet.NormalizeKey(agencyKey)}
	}
	out := make([]AnnotatedVehicle, 0, len(feed.Vehicles))
	for _, v := range feed.Vehicles {
		av := AnnotatedVehicle{Vehicle: v, FleetNumber: v.FleetNumber()}
		res, err := reg.Lookup(agencyKey, av.FleetNumber)
		switch {
		case errors.Is(err, fleet.ErrInvalidIdentifier):
			av.Outcome = OutcomeInvalidNumber
		case err != nil:
			return nil, err
		default:
			av.Outcome = res.Outcome.String()
			av.OtherAgencies = res.OtherAgencies
			if res.Outcome == fleet.Found {
				spec := res.Spec
				av.Spec = &spec
			}
		}
		out = append(out, av)
	}
	return out, nil
}

// Summarize tallies annotated vehicles by outcome
func Summarize(vs []AnnotatedVehicle) Summary {
	s := Summary{Total: len(vs)}
	for _, v := range vs {
		switch v.Outcome {
		case fleet.Found.String():
			s.Matched++
		case fleet.NotFoundWithSuggestions.String():
			s.Suggested++
		default:
			s.Unmatched++
		}
	}
	return s
}
