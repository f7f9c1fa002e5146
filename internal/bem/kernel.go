// Package bem provides reference solver.Gateway implementations: centroid
// collocation with one-point quadrature, an equal-area-disc self term and a
// dense LU solve. They are adequate for the small test meshes shipped with
// the module, not for production accuracy. One-point quadrature also loses
// accuracy once elements approach the wavelength (k·h near 1 and above): on
// the 32-element plate fixture the radiation ratio overshoots to about 1.3
// near k=5.5 and falls to about 0.6 by k=18.
package bem

import (
	"math"
	"math/cmplx"

	"github.com/alexiusacademia/acousticbem/internal/mesh"
)

// green returns the free-space Helmholtz kernel e^{ikr}/(4πr).
func green(k, r float64) complex128 {
	return cmplx.Exp(complex(0, k*r)) / complex(4*math.Pi*r, 0)
}

// greenNormal returns ∂G/∂n_q for source point q with unit normal n and
// observation point x.
func greenNormal(k float64, x, q, n mesh.Vertex) complex128 {
	d := q.Sub(x)
	r := d.Norm()
	dGdr := cmplx.Exp(complex(0, k*r)) * complex(-1, k*r) / complex(4*math.Pi*r*r, 0)
	return dGdr * complex(d.Dot(n)/r, 0)
}

// selfSingle integrates G over a disc with the element's area centred on
// the collocation point: (e^{ika}-1)/(2ik).
func selfSingle(k, area float64) complex128 {
	a := math.Sqrt(area / math.Pi)
	return (cmplx.Exp(complex(0, k*a)) - 1) / complex(0, 2*k)
}

// single returns ∫_j G(x,q) dS_q with one-point quadrature, switching to the
// self term when x is the centroid itself.
func single(k float64, x, c mesh.Vertex, area float64) complex128 {
	r := x.Distance(c)
	if r < 1e-12 {
		return selfSingle(k, area)
	}
	return green(k, r) * complex(area, 0)
}

// double returns ∫_j ∂G/∂n_q dS_q. It vanishes on the element's own plane.
func double(k float64, x, c, n mesh.Vertex, area float64) complex128 {
	if x.Distance(c) < 1e-12 {
		return 0
	}
	return greenNormal(k, x, c, n) * complex(area, 0)
}
