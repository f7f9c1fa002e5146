package bem

import (
	"fmt"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
	"github.com/alexiusacademia/acousticbem/internal/solver"
)

// Interior solves the Helmholtz problem inside a closed surface whose
// normals point out of the fluid. On the boundary
//
//	½φ_i + Σ_j M_ij φ_j - Σ_j L_ij v_j = φ_inc,i
//
// with L the single-layer and M the double-layer operator. Each element
// adds either its Robin row α φ + β v = f or, for an opening element, the
// baffled-piston coupling φ_i + 2 Σ_{j open} L_ij v_j = 0 to the outside
// half-space.
type Interior struct {
	MaxCondition float64
}

// Solve implements solver.Gateway.
func (g *Interior) Solve(req *solver.Request) (*solver.Field, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m := req.Mesh
	if req.Options.ValidateGeometry {
		if err := checkClosed(m, req.Options.GeometryTolerance); err != nil {
			return nil, err
		}
	}
	areas, err := m.Areas()
	if err != nil {
		return nil, err
	}
	centroids := m.Centroids()
	normals := make([]mesh.Vertex, m.NumElements())
	for i := range normals {
		normals[i] = m.Normal(i)
	}
	k := req.Wavenumber
	n := m.NumElements()

	// unknowns: φ_0..φ_{n-1}, v_0..v_{n-1}
	sys := newSystem(2 * n)
	l := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		sys.set(i, i, 0.5)
		for j := 0; j < n; j++ {
			l[i*n+j] = single(k, centroids[i], centroids[j], areas[j])
			sys.add(i, j, double(k, centroids[i], centroids[j], normals[j], areas[j]))
			sys.set(i, n+j, -l[i*n+j])
		}
		sys.rhs[i] = req.Incident(i)
	}
	for i, c := range req.Conditions {
		row := n + i
		if c.Opening {
			sys.set(row, i, 1)
			for j, cj := range req.Conditions {
				if cj.Opening {
					sys.add(row, n+j, 2*l[i*n+j])
				}
			}
			continue
		}
		sys.set(row, i, c.Alpha)
		sys.set(row, n+i, c.Beta)
		sys.rhs[row] = c.F
	}

	x, err := sys.solve(maxCondition(g.MaxCondition))
	if err != nil {
		return nil, err
	}
	field := &solver.Field{
		Phi:      x[:n],
		V:        x[n:],
		FieldPhi: make([]complex128, len(req.FieldPoints)),
	}
	for p, pt := range req.FieldPoints {
		phi := req.IncidentField(p)
		for j := 0; j < n; j++ {
			phi += single(k, pt, centroids[j], areas[j])*field.V[j] -
				double(k, pt, centroids[j], normals[j], areas[j])*field.Phi[j]
		}
		field.FieldPhi[p] = phi
	}
	return field, nil
}

// checkClosed requires the area-weighted normals of the surface to cancel
// within tol relative to the total area.
func checkClosed(m *mesh.Mesh, tol float64) error {
	if err := m.Validate(); err != nil {
		return err
	}
	var sum mesh.Vertex
	var total float64
	for i := range m.Elements {
		a, err := m.Area(i)
		if err != nil {
			return err
		}
		sum = sum.Add(m.Normal(i).Scale(a))
		total += a
	}
	if r := sum.Norm() / total; r > tol {
		return fmt.Errorf("%w: surface is not closed, normal residual %.3e (tolerance %.1e)", bemerr.ErrGeometry, r, tol)
	}
	return nil
}
