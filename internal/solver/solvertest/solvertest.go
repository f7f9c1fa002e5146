// Package solvertest provides canned solver.Gateway doubles for testing the
// sweep and post-processing without a real boundary-element solve.
package solvertest

import (
	"github.com/alexiusacademia/acousticbem/internal/solver"
)

// Gateway validates each request like a real solver, records it, and
// delegates the answer to Respond.
type Gateway struct {
	Respond func(req *solver.Request) (*solver.Field, error)

	// Wavenumbers seen, in call order.
	Wavenumbers []float64
}

// Solve implements solver.Gateway.
func (g *Gateway) Solve(req *solver.Request) (*solver.Field, error) {
	g.Wavenumbers = append(g.Wavenumbers, req.Wavenumber)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return g.Respond(req)
}

// Constant returns the same potential and velocity on every element and
// the same potential at every field point.
func Constant(phi, v, fieldPhi complex128) *Gateway {
	return &Gateway{Respond: func(req *solver.Request) (*solver.Field, error) {
		f := newField(req)
		for i := range f.Phi {
			f.Phi[i], f.V[i] = phi, v
		}
		for i := range f.FieldPhi {
			f.FieldPhi[i] = fieldPhi
		}
		return f, nil
	}}
}

// Radiator answers with a surface whose specific acoustic impedance is
// ρc·(sigma(k) + 0.3i): the element velocity is taken from a Neumann
// condition (f/β) and the potential is chosen so that the unweighted
// radiation ratio of the case equals sigma(k) exactly.
func Radiator(sigma func(k float64) float64) *Gateway {
	return &Gateway{Respond: func(req *solver.Request) (*solver.Field, error) {
		f := newField(req)
		k := req.Wavenumber
		z := complex(sigma(k), 0.3)
		for i, c := range req.Conditions {
			if c.Opening || c.Beta == 0 {
				continue
			}
			v := c.F / c.Beta
			f.V[i] = v
			// iρωφ = ρc·z·v with ω = kc
			f.Phi[i] = complex(0, -1) * z * v / complex(k, 0)
		}
		return f, nil
	}}
}

// Failing returns err for every wavenumber for which fail reports true and
// delegates the rest to next.
func Failing(next *Gateway, fail func(k float64) bool, err error) *Gateway {
	return &Gateway{Respond: func(req *solver.Request) (*solver.Field, error) {
		if fail(req.Wavenumber) {
			return nil, err
		}
		return next.Respond(req)
	}}
}

func newField(req *solver.Request) *solver.Field {
	n := req.Mesh.NumElements()
	return &solver.Field{
		Phi:      make([]complex128, n),
		V:        make([]complex128, n),
		FieldPhi: make([]complex128, len(req.FieldPoints)),
	}
}
