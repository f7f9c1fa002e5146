package bem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
)

// DefaultMaxCondition is the largest LU condition estimate accepted before a
// system is reported singular.
const DefaultMaxCondition = 1e12

// system is a dense complex n×n matrix with right-hand side. Each solve
// allocates its own, so gateways keep no scratch state between calls.
type system struct {
	n   int
	a   []complex128
	rhs []complex128
}

func newSystem(n int) *system {
	return &system{n: n, a: make([]complex128, n*n), rhs: make([]complex128, n)}
}

func (s *system) set(i, j int, v complex128) { s.a[i*s.n+j] = v }

func (s *system) add(i, j int, v complex128) { s.a[i*s.n+j] += v }

// solve factorises the real 2n×2n form [[Re -Im] [Im Re]] with gonum's LU
// and returns the complex solution.
func (s *system) solve(maxCond float64) ([]complex128, error) {
	n := s.n
	re := mat.NewDense(2*n, 2*n, nil)
	b := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			z := s.a[i*n+j]
			re.Set(i, j, real(z))
			re.Set(i, j+n, -imag(z))
			re.Set(i+n, j, imag(z))
			re.Set(i+n, j+n, real(z))
		}
		b.SetVec(i, real(s.rhs[i]))
		b.SetVec(i+n, imag(s.rhs[i]))
	}

	var lu mat.LU
	lu.Factorize(re)
	if cond := lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > maxCond {
		return nil, fmt.Errorf("%w: condition estimate %.3e exceeds %.3e", bemerr.ErrSingular, cond, maxCond)
	}
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", bemerr.ErrSingular, err)
	}

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(x.AtVec(i), x.AtVec(i+n))
	}
	return out, nil
}

func maxCondition(c float64) float64 {
	if c > 0 {
		return c
	}
	return DefaultMaxCondition
}
