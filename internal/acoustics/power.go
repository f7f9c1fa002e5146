package acoustics

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
)

// PowerPolicy selects how element intensities are integrated over the surface.
type PowerPolicy string

const (
	// Unweighted sums intensities directly. Only valid for meshes whose
	// elements all have the same area.
	Unweighted PowerPolicy = "unweighted"

	// AreaWeighted sums intensity times element area.
	AreaWeighted PowerPolicy = "area-weighted"
)

// Band is a named element index range [From, To) whose power is reported
// separately, e.g. the opening and the wall of a cavity.
type Band struct {
	Name string `json:"name"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

// UnweightedPower returns Σ I_j.
func UnweightedPower(intensity []float64) float64 {
	return floats.Sum(intensity)
}

// AreaWeightedPower returns Σ I_j·A_j over elements [from, to).
func AreaWeightedPower(intensity, areas []float64, from, to int) (float64, error) {
	if len(intensity) != len(areas) {
		return 0, fmt.Errorf("%w: %d intensities for %d areas", bemerr.ErrBounds, len(intensity), len(areas))
	}
	if from < 0 || to > len(areas) || from > to {
		return 0, fmt.Errorf("%w: element range [%d,%d) outside [0,%d)", bemerr.ErrBounds, from, to, len(areas))
	}
	return floats.Dot(intensity[from:to], areas[from:to]), nil
}

// BaffledPower returns Σ ρc|v_j|²/2, the power an infinite rigid baffle with
// the same surface velocity would radiate (unweighted form).
func BaffledPower(v []complex128, m Medium) float64 {
	var sum float64
	for _, vj := range v {
		a := cmplx.Abs(vj)
		sum += a * a
	}
	return m.Impedance() * sum / 2
}

// AreaWeightedBaffledPower returns Σ ρc|v_j|²·A_j/2.
func AreaWeightedBaffledPower(v []complex128, areas []float64, m Medium) float64 {
	var sum float64
	for j, vj := range v {
		a := cmplx.Abs(vj)
		sum += a * a * areas[j]
	}
	return m.Impedance() * sum / 2
}

// RadiationRatio returns power/baffled. It is zero when the surface does not move.
func RadiationRatio(power, baffled float64) float64 {
	if baffled == 0 {
		return 0
	}
	return power / baffled
}

// MechanicalImpedance returns Zm = Σ p_j·A_j / v_j over the elements whose
// velocity is non-zero.
func MechanicalImpedance(p, v []complex128, areas []float64) complex128 {
	var zm complex128
	for j := range p {
		if v[j] == 0 {
			continue
		}
		zm += p[j] * complex(areas[j], 0) / v[j]
	}
	return zm
}
