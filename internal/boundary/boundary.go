// Package boundary assigns the per-element Robin coefficients
// α·φ + β·v = f for the supported radiation scenarios.
package boundary

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/alexiusacademia/acousticbem/internal/acoustics"
	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
)

// Condition is the boundary condition α·φ + β·v = f at one element centroid.
// An Opening element carries no coefficients: the solver applies its own
// open-boundary treatment to it.
type Condition struct {
	Alpha   complex128
	Beta    complex128
	F       complex128
	Opening bool
}

// Neumann returns the prescribed normal velocity condition v = f.
func Neumann(f complex128) Condition {
	return Condition{Alpha: 0, Beta: 1, F: f}
}

// Set holds one Condition per mesh element, in element order.
type Set []Condition

// Validate rejects any non-opening element with α = β = 0 or non-finite
// coefficients.
func (s Set) Validate() error {
	for i, c := range s {
		if c.Opening {
			continue
		}
		if c.Alpha == 0 && c.Beta == 0 {
			return bemerr.Element(bemerr.ErrIllPosed, i, "alpha and beta are both zero")
		}
		for _, z := range []complex128{c.Alpha, c.Beta, c.F} {
			if cmplx.IsNaN(z) || cmplx.IsInf(z) {
				return bemerr.Element(bemerr.ErrIllPosed, i, "non-finite coefficient %v", z)
			}
		}
	}
	return nil
}

// OpeningCount returns the number of elements left to the solver's
// open-boundary treatment.
func (s Set) OpeningCount() int {
	n := 0
	for _, c := range s {
		if c.Opening {
			n++
		}
	}
	return n
}

// Scenario selects how Build assigns the coefficients.
type Scenario string

const (
	// ExcitedPlate prescribes v = sin(πx)·sin(πy) at every centroid.
	ExcitedPlate Scenario = "plate"

	// PartitionedCavity leaves the first Opening elements open and makes
	// the rest a wall that is rigid below ExcitedFrom and vibrates with
	// unit normal velocity from ExcitedFrom on.
	PartitionedCavity Scenario = "cavity"
)

// Options configures Build.
type Options struct {
	Scenario Scenario

	// Cavity only, 0-based element indices.
	Opening     int // elements [0, Opening) form the opening
	ExcitedFrom int // wall elements with index >= ExcitedFrom get f = 1
}

// Defaults for the built-in cavity mesh.
const (
	DefaultCavityOpening     = 6
	DefaultCavityExcitedFrom = 30
)

// Build returns one Condition per element of m. Both scenarios are
// frequency independent, so the result can be reused for every case.
func Build(m *mesh.Mesh, medium acoustics.Medium, opts Options) (Set, error) {
	if err := medium.Validate(); err != nil {
		return nil, err
	}
	var set Set
	switch opts.Scenario {
	case ExcitedPlate:
		set = excitedPlate(m)
	case PartitionedCavity:
		var err error
		if set, err = partitionedCavity(m, opts.Opening, opts.ExcitedFrom); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown scenario %q", opts.Scenario)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func excitedPlate(m *mesh.Mesh) Set {
	set := make(Set, m.NumElements())
	for i := range set {
		c := m.Centroid(i)
		set[i] = Neumann(complex(math.Sin(math.Pi*c.X)*math.Sin(math.Pi*c.Y), 0))
	}
	return set
}

func partitionedCavity(m *mesh.Mesh, opening, excitedFrom int) (Set, error) {
	n := m.NumElements()
	if opening < 0 || opening > n {
		return nil, fmt.Errorf("%w: opening of %d elements on a mesh of %d", bemerr.ErrBounds, opening, n)
	}
	if excitedFrom < opening || excitedFrom > n {
		return nil, fmt.Errorf("%w: excitation start %d outside wall [%d,%d]", bemerr.ErrBounds, excitedFrom, opening, n)
	}
	set := make(Set, n)
	for i := range set {
		switch {
		case i < opening:
			set[i] = Condition{Opening: true}
		case i >= excitedFrom:
			set[i] = Neumann(1)
		default:
			set[i] = Neumann(0)
		}
	}
	return set, nil
}
