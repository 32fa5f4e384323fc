/*
Package fleet maps transit agency fleet numbers to vehicle specifications.

A Registry holds one AgencyFleet per agency. Each agency owns an ordered list
of closed fleet-number intervals (FleetRange), each bound to a FleetSpec
describing make, model, year, propulsion and length.

# Basic Usage

	reg := fleet.Default()

	res, err := reg.Lookup("wmata", "1042")
	switch {
	case errors.Is(err, fleet.ErrAgencyNotFound):
	    // unknown agency key
	case errors.Is(err, fleet.ErrInvalidIdentifier):
	    // "Bus ID must be numeric."
	case res.Outcome == fleet.Found:
	    fmt.Println(res.Spec.Headline(), res.OtherAgencies)
	case res.Outcome == fleet.NotFoundWithSuggestions:
	    top, _ := res.TopSuggestion()
	    fmt.Println("try", top.Key)
	}

# Lookup Rules

Ranges are scanned in authoring order and the first interval containing the
fleet number wins. Ranges are not required to be sorted or disjoint, so an
earlier range shadows a later overlapping one. Registry.Overlaps lists such
pairs for review.

When the requested agency has no match, every other agency is searched and the
ones covering the number are returned as suggestions in registry order. When
it does match, the same search reports which other agencies reuse the number.

# Concurrency

A Registry is never mutated after NewRegistry returns. Lookups allocate only
their result and are safe for concurrent use without locking.

# Custom Registries

LoadRegistryFile reads a YAML registry (see WriteRegistry for the format),
validates it and builds a Registry. Default returns the curated dataset
compiled into the binary.
*/
package fleet
