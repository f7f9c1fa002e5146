// Package solver defines the contract between the frequency sweep and a
// boundary-element Helmholtz solver. Implementations live elsewhere
// (internal/bem, solvertest); the sweep depends only on Gateway.
package solver

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
)

// Options are the control parameters passed with every solve.
type Options struct {
	// IncludeParticularSolution adds the incident (particular) field to the
	// solution for inhomogeneous excitation.
	IncludeParticularSolution bool `json:"include_particular_solution"`

	// ValidateGeometry makes the solver check mesh self-consistency within
	// GeometryTolerance before assembling.
	ValidateGeometry  bool    `json:"validate_geometry"`
	GeometryTolerance float64 `json:"geometry_tolerance"`
}

// DefaultOptions validates geometry at 1e-6 and adds no particular solution.
func DefaultOptions() Options {
	return Options{ValidateGeometry: true, GeometryTolerance: 1e-6}
}

// Capacity bounds the problem size a solver accepts.
type Capacity struct {
	MaxVertices    int `json:"max_vertices"`
	MaxElements    int `json:"max_elements"`
	MaxFieldPoints int `json:"max_field_points"`
}

// DefaultCapacity is large enough for the dense reference solvers.
func DefaultCapacity() Capacity {
	return Capacity{MaxVertices: 4096, MaxElements: 2048, MaxFieldPoints: 1024}
}

// Request is one Helmholtz solve at a single wavenumber.
type Request struct {
	Wavenumber  float64
	Mesh        *mesh.Mesh
	FieldPoints []mesh.Vertex
	Conditions  boundary.Set

	// Incident potential at the element centroids and field points. Used
	// only with IncludeParticularSolution; nil means zero.
	IncidentPhi      []complex128
	IncidentFieldPhi []complex128

	Options  Options
	Capacity Capacity
}

// Validate checks the request against the contract: positive wavenumber,
// counts within capacity, one well-posed condition per element.
func (r *Request) Validate() error {
	if !(r.Wavenumber > 0) || math.IsInf(r.Wavenumber, 0) {
		return fmt.Errorf("%w: wavenumber %g", bemerr.ErrInvalidFrequency, r.Wavenumber)
	}
	if r.Mesh == nil {
		return fmt.Errorf("%w: no mesh", bemerr.ErrGeometry)
	}
	if err := r.Capacity.Check(r.Mesh.NumVertices(), r.Mesh.NumElements(), len(r.FieldPoints)); err != nil {
		return err
	}
	n := r.Mesh.NumElements()
	if len(r.Conditions) != n {
		return fmt.Errorf("%w: %d boundary conditions for %d elements", bemerr.ErrBounds, len(r.Conditions), n)
	}
	if err := r.Conditions.Validate(); err != nil {
		return err
	}
	if r.IncidentPhi != nil && len(r.IncidentPhi) != n {
		return fmt.Errorf("%w: %d incident potentials for %d elements", bemerr.ErrBounds, len(r.IncidentPhi), n)
	}
	if r.IncidentFieldPhi != nil && len(r.IncidentFieldPhi) != len(r.FieldPoints) {
		return fmt.Errorf("%w: %d incident field potentials for %d field points",
			bemerr.ErrBounds, len(r.IncidentFieldPhi), len(r.FieldPoints))
	}
	return nil
}

// Check returns ErrBounds if any count exceeds its capacity. A zero
// capacity means unbounded.
func (c Capacity) Check(vertices, elements, fieldPoints int) error {
	for _, b := range []struct {
		what       string
		count, max int
	}{
		{"vertices", vertices, c.MaxVertices},
		{"elements", elements, c.MaxElements},
		{"field points", fieldPoints, c.MaxFieldPoints},
	} {
		if b.max > 0 && b.count > b.max {
			return fmt.Errorf("%w: %d %s exceeds capacity %d", bemerr.ErrBounds, b.count, b.what, b.max)
		}
	}
	return nil
}

// Incident returns the incident potential at element i, or zero when the
// particular solution is not requested.
func (r *Request) Incident(i int) complex128 {
	if !r.Options.IncludeParticularSolution || r.IncidentPhi == nil {
		return 0
	}
	return r.IncidentPhi[i]
}

// IncidentField returns the incident potential at field point i.
func (r *Request) IncidentField(i int) complex128 {
	if !r.Options.IncludeParticularSolution || r.IncidentFieldPhi == nil {
		return 0
	}
	return r.IncidentFieldPhi[i]
}

// Field is the raw solution of one case: potential and normal velocity at
// every element centroid, and potential at every field point.
type Field struct {
	Phi      []complex128
	V        []complex128
	FieldPhi []complex128
}

// Gateway solves one Helmholtz boundary value problem. Calls are treated
// as blocking and non-reentrant.
type Gateway interface {
	Solve(req *Request) (*Field, error)
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(req *Request) (*Field, error)

// Solve calls f(req).
func (f GatewayFunc) Solve(req *Request) (*Field, error) {
	return f(req)
}
