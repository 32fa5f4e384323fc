package fleet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// registryFile is the YAML form of a registry:
//
//	agencies:
//	  - key: WMATA
//	    displayName: Metrobus (WMATA)
//	    ranges:
//	      - {lo: 1040, hi: 1044, year: 2025, make: Nova Bus, model: LFSe+, propulsion: Battery Electric, series: LFS, lengthFt: 40}
type registryFile struct {
	Agencies []agencyFile `yaml:"agencies" validate:"required,min=1,dive"`
}

type agencyFile struct {
	Key         string      `yaml:"key" validate:"required,uppercase"`
	DisplayName string      `yaml:"displayName" validate:"required"`
	Ranges      []rangeFile `yaml:"ranges" validate:"dive"`
}

type rangeFile struct {
	Lo          int    `yaml:"lo"`
	Hi          int    `yaml:"hi" validate:"gtefield=Lo"`
	Year        int    `yaml:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Make        string `yaml:"make" validate:"required"`
	Model       string `yaml:"model"`
	Propulsion  string `yaml:"propulsion" validate:"required,propulsion"`
	Series      string `yaml:"series,omitempty"`
	LengthFt    int    `yaml:"lengthFt,omitempty" validate:"gte=0"`
	DisplayName string `yaml:"displayName,omitempty"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("propulsion", func(fl validator.FieldLevel) bool {
		_, err := ParsePropulsionType(fl.Field().String())
		return err == nil
	})
	return v
}

// LoadRegistry decodes and validates a YAML registry. Unknown fields are
// rejected so typos in hand-edited files surface at startup.
func LoadRegistry(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f registryFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &RegistryError{Index: -1, Msg: "empty document"}
		}
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	if err := newValidator().Struct(f); err != nil {
		return nil, fmt.Errorf("validate registry: %w", err)
	}
	fleets := make([]AgencyFleet, 0, len(f.Agencies))
	for _, a := range f.Agencies {
		ranges := make([]FleetRange, 0, len(a.Ranges))
		for _, rf := range a.Ranges {
			p, err := ParsePropulsionType(rf.Propulsion)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, FleetRange{
				Lo: rf.Lo,
				Hi: rf.Hi,
				Spec: FleetSpec{
					Year:        rf.Year,
					Make:        rf.Make,
					Model:       rf.Model,
					Propulsion:  p,
					Series:      rf.Series,
					LengthFt:    rf.LengthFt,
					DisplayName: rf.DisplayName,
				},
			})
		}
		fleets = append(fleets, NewAgencyFleet(a.Key, a.DisplayName, ranges))
	}
	return NewRegistry(fleets...)
}

// LoadRegistryFile reads a YAML registry from path
func LoadRegistryFile(path string) (*Registry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	reg, err := LoadRegistry(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// WriteRegistry encodes reg in the format LoadRegistry reads
func WriteRegistry(w io.Writer, reg *Registry) error {
	var f registryFile
	for _, a := range reg.agencies {
		af := agencyFile{Key: a.Key, DisplayName: a.DisplayName, Ranges: make([]rangeFile, 0, len(a.ranges))}
		for _, r := range a.ranges {
			af.Ranges = append(af.Ranges, rangeFile{
				Lo:          r.Lo,
				Hi:          r.Hi,
				Year:        r.Spec.Year,
				Make:        r.Spec.Make,
				Model:       r.Spec.Model,
				Propulsion:  r.Spec.Propulsion.String(),
				Series:      r.Spec.Series,
				LengthFt:    r.Spec.LengthFt,
				DisplayName: r.Spec.DisplayName,
			})
		}
		f.Agencies = append(f.Agencies, af)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return enc.Close()
}
