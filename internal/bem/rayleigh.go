package bem

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
	"github.com/alexiusacademia/acousticbem/internal/solver"
)

// Rayleigh solves radiation from a plane surface set in an infinite rigid
// baffle. The potential follows from the Rayleigh integral
//
//	φ(x) = φ_inc(x) - 2 ∫ G(x,q) v(q) dS_q
//
// with v the normal velocity into the fluid. Robin conditions on the
// surface turn this into an n×n system for v.
type Rayleigh struct {
	MaxCondition float64
}

// Solve implements solver.Gateway.
func (g *Rayleigh) Solve(req *solver.Request) (*solver.Field, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m := req.Mesh
	for i, c := range req.Conditions {
		if c.Opening {
			return nil, bemerr.Element(bemerr.ErrIllPosed, i, "opening elements need a cavity solver")
		}
	}
	if req.Options.ValidateGeometry {
		if err := checkPlanar(m, req.Options.GeometryTolerance); err != nil {
			return nil, err
		}
	}
	areas, err := m.Areas()
	if err != nil {
		return nil, err
	}
	centroids := m.Centroids()
	k := req.Wavenumber
	n := m.NumElements()

	// r[i][j] = -2 ∫_j G(c_i, q) dS
	r := newSystem(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r.set(i, j, -2*single(k, centroids[i], centroids[j], areas[j]))
		}
	}

	// α_i Σ_j r_ij v_j + β_i v_i = f_i - α_i φ_inc,i
	sys := newSystem(n)
	for i, c := range req.Conditions {
		for j := 0; j < n; j++ {
			sys.set(i, j, c.Alpha*r.a[i*n+j])
		}
		sys.add(i, i, c.Beta)
		sys.rhs[i] = c.F - c.Alpha*req.Incident(i)
	}
	v, err := sys.solve(maxCondition(g.MaxCondition))
	if err != nil {
		return nil, err
	}

	field := &solver.Field{
		Phi:      make([]complex128, n),
		V:        v,
		FieldPhi: make([]complex128, len(req.FieldPoints)),
	}
	for i := 0; i < n; i++ {
		phi := req.Incident(i)
		for j := 0; j < n; j++ {
			phi += r.a[i*n+j] * v[j]
		}
		field.Phi[i] = phi
	}
	for p, x := range req.FieldPoints {
		phi := req.IncidentField(p)
		for j := 0; j < n; j++ {
			phi -= 2 * single(k, x, centroids[j], areas[j]) * v[j]
		}
		field.FieldPhi[p] = phi
	}
	return field, nil
}

// checkPlanar requires every element to share the first element's plane
// and normal within tol.
func checkPlanar(m *mesh.Mesh, tol float64) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n0 := m.Normal(0)
	c0 := m.Centroid(0)
	for i := range m.Elements {
		if d := m.Normal(i).Sub(n0).Norm(); d > tol {
			return bemerr.Element(bemerr.ErrGeometry, i, "normal deviates from the baffle plane by %.3e (tolerance %.1e)", d, tol)
		}
	}
	for i, v := range m.Vertices {
		if d := math.Abs(v.Sub(c0).Dot(n0)); d > tol {
			return fmt.Errorf("%w: vertex %d lies %.3e off the baffle plane (tolerance %.1e)", bemerr.ErrGeometry, i+1, d, tol)
		}
	}
	return nil
}
