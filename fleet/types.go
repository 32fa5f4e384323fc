package fleet

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// PropulsionType classifies how a vehicle is powered
type PropulsionType int

const (
	CNG PropulsionType = iota
	BatteryElectric
	Trolley
	HybridElectric
	DieselElectric
	Diesel
	HydrogenFuelCell
)

var propulsionLabels = [...]string{
	CNG:              "CNG",
	BatteryElectric:  "Battery Electric",
	Trolley:          "Trolley",
	HybridElectric:   "Hybrid Electric",
	DieselElectric:   "Diesel Electric",
	Diesel:           "Diesel",
	HydrogenFuelCell: "Hydrogen Fuel Cell",
}

// PropulsionTypes returns every propulsion type in declaration order
func PropulsionTypes() []PropulsionType {
	return []PropulsionType{CNG, BatteryElectric, Trolley, HybridElectric, DieselElectric, Diesel, HydrogenFuelCell}
}

// String returns the human-readable label, e.g. "Battery Electric"
func (p PropulsionType) String() string {
	if p < 0 || int(p) >= len(propulsionLabels) {
		return "PropulsionType(" + strconv.Itoa(int(p)) + ")"
	}
	return propulsionLabels[p]
}

// Valid reports whether p is one of the declared constants
func (p PropulsionType) Valid() bool {
	return p >= 0 && int(p) < len(propulsionLabels)
}

func (p PropulsionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PropulsionType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParsePropulsionType(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePropulsionType accepts a label ("Battery Electric") or a constant-style
// name ("BATTERY_ELECTRIC", "batteryelectric"), case-insensitively.
func ParsePropulsionType(s string) (PropulsionType, error) {
	key := squashLabel(s)
	for i, label := range propulsionLabels {
		if squashLabel(label) == key {
			return PropulsionType(i), nil
		}
	}
	return 0, &PropulsionError{Value: s}
}

func squashLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// FleetSpec describes one vehicle configuration. Zero Year, LengthFt and
// DisplayName mean the value is not known.
type FleetSpec struct {
	Year        int
	Make        string
	Model       string
	Propulsion  PropulsionType
	Series      string
	LengthFt    int
	DisplayName string
}

type fleetSpecJSON struct {
	Year        *int           `json:"year"`
	Make        string         `json:"make"`
	Model       string         `json:"model"`
	Propulsion  PropulsionType `json:"propulsion_type"`
	Series      string         `json:"series"`
	LengthFt    *int           `json:"length_ft"`
	DisplayName *string        `json:"display_name"`
}

// MarshalJSON emits every field; unknown optional values are null.
func (s FleetSpec) MarshalJSON() ([]byte, error) {
	out := fleetSpecJSON{
		Make:       s.Make,
		Model:      s.Model,
		Propulsion: s.Propulsion,
		Series:     s.Series,
	}
	if s.Year != 0 {
		out.Year = &s.Year
	}
	if s.LengthFt != 0 {
		out.LengthFt = &s.LengthFt
	}
	if s.DisplayName != "" {
		out.DisplayName = &s.DisplayName
	}
	return json.Marshal(out)
}

func (s *FleetSpec) UnmarshalJSON(b []byte) error {
	var in fleetSpecJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*s = FleetSpec{
		Make:       in.Make,
		Model:      in.Model,
		Propulsion: in.Propulsion,
		Series:     in.Series,
	}
	if in.Year != nil {
		s.Year = *in.Year
	}
	if in.LengthFt != nil {
		s.LengthFt = *in.LengthFt
	}
	if in.DisplayName != nil {
		s.DisplayName = *in.DisplayName
	}
	return nil
}

// Headline returns DisplayName, or a name derived from year, make, series and
// model. A series whose first word repeats the make's first word has that
// word dropped ("GILLIG" + "Gillig Low Floor" reads "GILLIG Low Floor").
func (s FleetSpec) Headline() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	series := strings.TrimSpace(s.Series)
	makeWords := strings.Fields(s.Make)
	seriesWords := strings.Fields(series)
	if len(makeWords) > 0 && len(seriesWords) > 0 && strings.EqualFold(makeWords[0], seriesWords[0]) {
		series = strings.Join(seriesWords[1:], " ")
	}
	parts := make([]string, 0, 4)
	if s.Year != 0 {
		parts = append(parts, strconv.Itoa(s.Year))
	}
	for _, p := range []string{s.Make, series, s.Model} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// FleetRange binds the closed interval [Lo, Hi] to a spec
type FleetRange struct {
	Lo   int
	Hi   int
	Spec FleetSpec
}

// Contains reports whether id lies within [Lo, Hi]
func (r FleetRange) Contains(id int) bool {
	return r.Lo <= id && id <= r.Hi
}

func (r FleetRange) String() string {
	if r.Lo == r.Hi {
		return strconv.Itoa(r.Lo)
	}
	return strconv.Itoa(r.Lo) + "-" + strconv.Itoa(r.Hi)
}

// AgencySummary identifies an agency for pickers and suggestions
type AgencySummary struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

// AgencyFleet is one agency's numbering scheme. Range order is authoring
// order and decides which range wins when two overlap.
type AgencyFleet struct {
	Key         string
	DisplayName string
	ranges      []FleetRange
}

// NewAgencyFleet copies ranges so later changes to the argument are not seen
func NewAgencyFleet(key, displayName string, ranges []FleetRange) AgencyFleet {
	return AgencyFleet{Key: key, DisplayName: displayName, ranges: slices.Clone(ranges)}
}

// Ranges returns a copy of the agency's ranges in authoring order
func (a AgencyFleet) Ranges() []FleetRange { return slices.Clone(a.ranges) }

// RangeCount returns the number of ranges without copying them
func (a AgencyFleet) RangeCount() int { return len(a.ranges) }

// Summary returns the key and display name
func (a AgencyFleet) Summary() AgencySummary {
	return AgencySummary{Key: a.Key, DisplayName: a.DisplayName}
}

// FindSpec returns the spec of the first range containing id
func (a AgencyFleet) FindSpec(id int) (FleetSpec, bool) {
	return FindSpec(id, a.ranges)
}

// covers reports whether any range contains id
func (a AgencyFleet) covers(id int) bool {
	for _, r := range a.ranges {
		if r.Contains(id) {
			return true
		}
	}
	return false
}
