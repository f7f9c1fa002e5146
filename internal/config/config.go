// Package config loads run definitions from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/acousticbem/internal/acoustics"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
	"github.com/alexiusacademia/acousticbem/internal/solver"
	"github.com/alexiusacademia/acousticbem/internal/sweep"
)

// Run describes one sweep: what to solve, at which frequencies, and where
// to write the results.
type Run struct {
	Name     string `json:"name"`
	Scenario string `json:"scenario"` // "plate" or "cavity"

	// Mesh is a built-in fixture name or a path to a mesh JSON file.
	// Empty selects the fixture matching the scenario.
	Mesh string `json:"mesh,omitempty"`

	Frequencies Frequencies `json:"frequencies"`

	Medium   *acoustics.Medium `json:"medium,omitempty"`
	Solver   *solver.Options   `json:"solver,omitempty"`
	Capacity *solver.Capacity  `json:"capacity,omitempty"`
	Cavity   *Cavity           `json:"cavity,omitempty"`

	FieldPoints []mesh.Vertex `json:"field_points,omitempty"`

	// IncidentDirection adds a unit plane wave travelling along this
	// direction when the solver includes the particular solution.
	IncidentDirection *mesh.Vertex `json:"incident_direction,omitempty"`

	Outputs Outputs `json:"outputs"`

	ContinueOnError bool `json:"continue_on_error,omitempty"`
}

// Frequencies selects the swept frequencies in Hz. Exactly one of Values,
// Range or Step/Count is used, in that order of precedence.
type Frequencies struct {
	Values []float64 `json:"values,omitempty"`
	Range  string    `json:"range,omitempty"` // "min:max:step" or "f1,f2,..."
	Step   float64   `json:"step,omitempty"`  // f_i = step·i, i = 1..count
	Count  int       `json:"count,omitempty"`
}

// Cavity holds the partitioned-cavity parameters.
type Cavity struct {
	OpeningElements int `json:"opening_elements"`
	ExcitedFrom     int `json:"excited_from"`
}

// Outputs names the files written after the sweep. Empty entries are
// skipped and "-" writes to standard output.
type Outputs struct {
	RatioCSV string `json:"ratio_csv,omitempty"`
	Report   string `json:"report,omitempty"`
	Plot     string `json:"plot,omitempty"`
	Chart    bool   `json:"chart,omitempty"`
	DB       string `json:"db,omitempty"`
}

// LoadFromFile loads a run definition from a JSON file, fills in defaults
// and validates it.
func LoadFromFile(filepath string) (*Run, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parse run config %s: %w", filepath, err)
	}
	run.ApplyDefaults()
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return &run, nil
}

// ApplyDefaults fills every unset section with the scenario defaults.
func (r *Run) ApplyDefaults() {
	if r.Mesh == "" {
		r.Mesh = r.Scenario
	}
	if r.Name == "" {
		r.Name = r.Scenario
	}
	if r.Medium == nil {
		m := acoustics.DefaultMedium()
		r.Medium = &m
	} else if r.Medium.ReferencePressure == 0 {
		r.Medium.ReferencePressure = acoustics.ReferencePressure
	}
	if r.Solver == nil {
		o := solver.DefaultOptions()
		r.Solver = &o
	}
	if r.Capacity == nil {
		c := solver.DefaultCapacity()
		r.Capacity = &c
	}
	if r.Scenario == string(boundary.PartitionedCavity) && r.Cavity == nil {
		r.Cavity = &Cavity{
			OpeningElements: boundary.DefaultCavityOpening,
			ExcitedFrom:     boundary.DefaultCavityExcitedFrom,
		}
	}
}

// Validate checks the run definition. Mesh-dependent limits (opening size
// against element count) are checked when the boundary conditions are built.
func (r *Run) Validate() error {
	switch boundary.Scenario(r.Scenario) {
	case boundary.ExcitedPlate, boundary.PartitionedCavity:
	default:
		return &ValidationError{fmt.Sprintf("unknown scenario %q (want %q or %q)", r.Scenario, boundary.ExcitedPlate, boundary.PartitionedCavity)}
	}
	if r.Medium == nil {
		return &ValidationError{"medium is not set"}
	}
	if err := r.Medium.Validate(); err != nil {
		return &ValidationError{err.Error()}
	}
	if r.Solver != nil && r.Solver.ValidateGeometry && !(r.Solver.GeometryTolerance > 0) {
		return &ValidationError{"geometry tolerance must be positive when geometry validation is on"}
	}
	if r.Cavity != nil && (r.Cavity.OpeningElements < 0 || r.Cavity.ExcitedFrom < r.Cavity.OpeningElements) {
		return &ValidationError{fmt.Sprintf("cavity opening %d and excitation start %d are inconsistent",
			r.Cavity.OpeningElements, r.Cavity.ExcitedFrom)}
	}
	if _, err := r.Frequencies.List(); err != nil {
		return &ValidationError{err.Error()}
	}
	return nil
}

// List expands the frequency selection.
func (f Frequencies) List() ([]float64, error) {
	switch {
	case len(f.Values) > 0:
		for i, v := range f.Values {
			if !(v > 0) {
				return nil, fmt.Errorf("frequency %d must be positive, got %g", i+1, v)
			}
		}
		return append([]float64(nil), f.Values...), nil
	case f.Range != "":
		return sweep.ParseFrequencies(f.Range)
	case f.Step != 0 || f.Count != 0:
		return sweep.LinearFrequencies(f.Step, f.Count)
	}
	return nil, fmt.Errorf("no frequencies given")
}

// BoundaryOptions returns the boundary builder options of the run.
func (r *Run) BoundaryOptions() boundary.Options {
	opts := boundary.Options{Scenario: boundary.Scenario(r.Scenario)}
	if r.Cavity != nil {
		opts.Opening = r.Cavity.OpeningElements
		opts.ExcitedFrom = r.Cavity.ExcitedFrom
	}
	return opts
}

// ValidationError represents a run configuration error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return "invalid run config: " + e.msg
}
