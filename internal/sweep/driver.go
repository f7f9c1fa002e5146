package sweep

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/google/uuid"

	"github.com/alexiusacademia/acousticbem/internal/acoustics"
	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
	"github.com/alexiusacademia/acousticbem/internal/monitoring"
	"github.com/alexiusacademia/acousticbem/internal/solver"
)

// Driver runs one scenario over a list of frequencies. All fields are read
// only during Run; cases share nothing mutable.
type Driver struct {
	// Name labels the run in logs and stored results.
	Name string

	Gateway     solver.Gateway
	Mesh        *mesh.Mesh
	FieldPoints []mesh.Vertex
	Conditions  boundary.Set
	Medium      acoustics.Medium

	Options  solver.Options
	Capacity solver.Capacity

	// Incident, if set, gives the incident potential used as particular
	// solution when Options.IncludeParticularSolution is on.
	Incident IncidentField

	// Policy and Bands select how element intensities are integrated.
	Policy acoustics.PowerPolicy
	Bands  []acoustics.Band

	// ContinueOnError records failed cases and keeps sweeping instead of
	// aborting the run on the first failure.
	ContinueOnError bool

	// Observe, if set, is called on every state transition.
	Observe func(s State, c acoustics.Case)

	state State
}

// CaseResult is everything kept from one solved case.
type CaseResult struct {
	Index     int
	Case      acoustics.Case
	Field     *solver.Field
	Acoustics *acoustics.Acoustics
	Summary   acoustics.Summary
}

// Result is a completed run. Cases are in input frequency order.
type Result struct {
	RunID    string
	Name     string
	Mesh     *mesh.Mesh
	Medium   acoustics.Medium
	Areas    []float64
	Cases    []CaseResult
	Failures []*bemerr.CaseError
}

// State returns the state the driver is in, Done or Aborted after Run.
func (d *Driver) State() State {
	return d.state
}

// Validate checks everything that can be checked before the first solve.
func (d *Driver) Validate() error {
	if d.Gateway == nil {
		return fmt.Errorf("sweep: no solver gateway")
	}
	if d.Mesh == nil {
		return fmt.Errorf("%w: sweep has no mesh", bemerr.ErrGeometry)
	}
	if err := d.Medium.Validate(); err != nil {
		return err
	}
	if err := d.Mesh.Validate(); err != nil {
		return err
	}
	if err := d.Capacity.Check(d.Mesh.NumVertices(), d.Mesh.NumElements(), len(d.FieldPoints)); err != nil {
		return err
	}
	if len(d.Conditions) != d.Mesh.NumElements() {
		return fmt.Errorf("%w: %d boundary conditions for %d elements", bemerr.ErrBounds, len(d.Conditions), d.Mesh.NumElements())
	}
	return d.Conditions.Validate()
}

// Run solves every frequency in order. Unless ContinueOnError is set, the
// first failing case aborts the run and no Result is returned.
func (d *Driver) Run(frequencies []float64) (*Result, error) {
	d.state = Idle
	if len(frequencies) == 0 {
		return nil, fmt.Errorf("sweep: no frequencies")
	}
	if err := d.Validate(); err != nil {
		d.transition(Aborted, acoustics.Case{})
		return nil, err
	}
	areas, err := d.Mesh.Areas()
	if err != nil {
		d.transition(Aborted, acoustics.Case{})
		return nil, err
	}

	res := &Result{
		RunID:  uuid.New().String(),
		Name:   d.Name,
		Mesh:   d.Mesh,
		Medium: d.Medium,
		Areas:  areas,
	}
	monitoring.Logf("sweep %s: %d cases on %q (%d elements, %s power)",
		res.RunID[:8], len(frequencies), d.Mesh.Name, d.Mesh.NumElements(), d.policy())

	for i, f := range frequencies {
		cr, err := d.runCase(i, f, areas)
		if err != nil {
			if !d.ContinueOnError {
				d.transition(Aborted, cr.Case)
				monitoring.Logf("sweep %s: aborted: %v", res.RunID[:8], err)
				return nil, err
			}
			monitoring.Logf("sweep %s: %v", res.RunID[:8], err)
			res.Failures = append(res.Failures, err)
			d.transition(Idle, cr.Case)
			continue
		}
		res.Cases = append(res.Cases, cr)
		monitoring.Logf("sweep %s: case %d/%d f=%.2f Hz k=%.5f ratio=%.5g",
			res.RunID[:8], i+1, len(frequencies), f, cr.Case.Wavenumber, cr.Summary.RadiationRatio)
		d.transition(Idle, cr.Case)
	}
	d.transition(Done, acoustics.Case{})
	return res, nil
}

func (d *Driver) runCase(i int, f float64, areas []float64) (CaseResult, *bemerr.CaseError) {
	fail := func(c acoustics.Case, err error) (CaseResult, *bemerr.CaseError) {
		return CaseResult{Index: i, Case: c}, &bemerr.CaseError{Case: i, Frequency: f, Wavenumber: c.Wavenumber, Err: err}
	}

	d.transition(BuildCase, acoustics.Case{Frequency: f})
	c, err := acoustics.NewCase(f, d.Medium)
	if err != nil {
		return fail(acoustics.Case{Frequency: f}, err)
	}
	req := &solver.Request{
		Wavenumber:  c.Wavenumber,
		Mesh:        d.Mesh,
		FieldPoints: d.FieldPoints,
		Conditions:  d.Conditions,
		Options:     d.Options,
		Capacity:    d.Capacity,
	}
	if d.Options.IncludeParticularSolution && d.Incident != nil {
		req.IncidentPhi = sample(d.Incident, c.Wavenumber, d.Mesh.Centroids())
		req.IncidentFieldPhi = sample(d.Incident, c.Wavenumber, d.FieldPoints)
	}

	d.transition(Solve, c)
	field, err := d.Gateway.Solve(req)
	if err != nil {
		return fail(c, err)
	}
	if len(field.Phi) != d.Mesh.NumElements() || len(field.V) != d.Mesh.NumElements() || len(field.FieldPhi) != len(d.FieldPoints) {
		return fail(c, fmt.Errorf("%w: solver returned %d/%d/%d values for %d elements and %d field points",
			bemerr.ErrBounds, len(field.Phi), len(field.V), len(field.FieldPhi), d.Mesh.NumElements(), len(d.FieldPoints)))
	}

	d.transition(PostProcess, c)
	a, err := acoustics.Derive(c, d.Medium, field.Phi, field.V, field.FieldPhi)
	if err != nil {
		return fail(c, err)
	}
	s, err := a.Summarize(d.policy(), field.V, areas, d.Medium, d.Bands)
	if err != nil {
		return fail(c, err)
	}
	if !finite(s.Power) || !finite(s.RadiationRatio) {
		return fail(c, fmt.Errorf("%w: non-finite power %g (ratio %g)", bemerr.ErrSingular, s.Power, s.RadiationRatio))
	}

	d.transition(Collect, c)
	return CaseResult{Index: i, Case: c, Field: field, Acoustics: a, Summary: s}, nil
}

func (d *Driver) policy() acoustics.PowerPolicy {
	if d.Policy == "" {
		return acoustics.AreaWeighted
	}
	return d.Policy
}

func (d *Driver) transition(s State, c acoustics.Case) {
	d.state = s
	if d.Observe != nil {
		d.Observe(s, c)
	}
}

// IncidentField returns the incident potential at x for wavenumber k.
type IncidentField func(k float64, x mesh.Vertex) complex128

// PlaneWave returns a unit-amplitude plane wave e^{ik d·x} travelling along
// direction. A zero direction yields a nil field.
func PlaneWave(direction mesh.Vertex) IncidentField {
	n := direction.Norm()
	if n == 0 {
		return nil
	}
	d := direction.Scale(1 / n)
	return func(k float64, x mesh.Vertex) complex128 {
		return cmplx.Exp(complex(0, k*d.Dot(x)))
	}
}

func sample(f IncidentField, k float64, points []mesh.Vertex) []complex128 {
	out := make([]complex128, len(points))
	for i, p := range points {
		out[i] = f(k, p)
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
