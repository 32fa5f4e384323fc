package fleet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is matched by errors from ParseBusID and CoerceBusID
	ErrInvalidIdentifier = errors.New("invalid fleet identifier")
	// ErrAgencyNotFound is matched when an agency key is not in the registry
	ErrAgencyNotFound = errors.New("agency not found")
	// ErrInvalidRegistry is matched by registry construction defects
	ErrInvalidRegistry = errors.New("invalid registry")
)

// IdentifierError reports a bus identifier that is not an integer. Its
// message is shown to end users as is.
type IdentifierError struct {
	Input any
}

func (e *IdentifierError) Error() string { return "Bus ID must be numeric." }

func (e *IdentifierError) Unwrap() error { return ErrInvalidIdentifier }

// AgencyNotFoundError reports an agency key missing from the registry
type AgencyNotFoundError struct {
	Key string
}

func (e *AgencyNotFoundError) Error() string { return "Agency not found." }

func (e *AgencyNotFoundError) Unwrap() error { return ErrAgencyNotFound }

// PropulsionError reports an unknown propulsion label
type PropulsionError struct {
	Value string
}

func (e *PropulsionError) Error() string {
	return fmt.Sprintf("unknown propulsion type %q", e.Value)
}

// RegistryError describes a defect found while building a registry
type RegistryError struct {
	Agency string
	Index  int // range index, -1 when the defect is agency-level
	Msg    string
}

func (e *RegistryError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("registry: agency %q range #%d: %s", e.Agency, e.Index, e.Msg)
	}
	if e.Agency != "" {
		return fmt.Sprintf("registry: agency %q: %s", e.Agency, e.Msg)
	}
	return "registry: " + e.Msg
}

func (e *RegistryError) Unwrap() error { return ErrInvalidRegistry }
