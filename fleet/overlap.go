package fleet

import "fmt"

// Overlap is a pair of same-agency ranges sharing at least one number.
// Winner was authored first and is the one lookups return.
type Overlap struct {
	Agency      string
	Winner      FleetRange
	WinnerIndex int
	Shadowed    FleetRange
	ShadowIndex int
}

// Lo and Hi bound the numbers where Shadowed is never returned
func (o Overlap) Lo() int { return max(o.Winner.Lo, o.Shadowed.Lo) }

func (o Overlap) Hi() int { return min(o.Winner.Hi, o.Shadowed.Hi) }

func (o Overlap) String() string {
	return fmt.Sprintf("%s: range #%d %s (%s) shadows range #%d %s (%s) for %d-%d",
		o.Agency,
		o.WinnerIndex, o.Winner, o.Winner.Spec.Headline(),
		o.ShadowIndex, o.Shadowed, o.Shadowed.Spec.Headline(),
		o.Lo(), o.Hi())
}

// Overlaps lists every overlapping range pair within each agency, agencies in
// registry order and pairs in authoring order. Cross-agency reuse of a number
// is expected and not reported here.
func (r *Registry) Overlaps() []Overlap {
	var out []Overlap
	for _, a := range r.agencies {
		for i := 0; i < len(a.ranges); i++ {
			for j := i + 1; j < len(a.ranges); j++ {
				x, y := a.ranges[i], a.ranges[j]
				if x.Lo <= y.Hi && y.Lo <= x.Hi {
					out = append(out, Overlap{
						Agency:      a.Key,
						Winner:      x,
						WinnerIndex: i,
						Shadowed:    y,
						ShadowIndex: j,
					})
				}
			}
		}
	}
	return out
}
