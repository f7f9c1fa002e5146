package acoustics

import (
	"fmt"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
)

// Acoustics holds the quantities derived from one solved case. It is built
// once by Derive and not modified afterwards.
type Acoustics struct {
	Case Case

	// Boundary elements
	Pressure  []complex128 // Pa
	Intensity []float64    // W/m²
	Decibel   []float64    // dB re p_ref
	Phase     []float64    // rad

	// Field (observation) points
	FieldPressure []complex128
	FieldDecibel  []float64
	FieldPhase    []float64
}

// Derive computes pressure, intensity, level and phase for every element
// from its potential phi and normal velocity v, and pressure, level and
// phase for every field point from fieldPhi.
func Derive(c Case, m Medium, phi, v, fieldPhi []complex128) (*Acoustics, error) {
	if len(phi) != len(v) {
		return nil, fmt.Errorf("%w: %d potentials for %d velocities", bemerr.ErrBounds, len(phi), len(v))
	}
	a := &Acoustics{
		Case:          c,
		Pressure:      make([]complex128, len(phi)),
		Intensity:     make([]float64, len(phi)),
		Decibel:       make([]float64, len(phi)),
		Phase:         make([]float64, len(phi)),
		FieldPressure: make([]complex128, len(fieldPhi)),
		FieldDecibel:  make([]float64, len(fieldPhi)),
		FieldPhase:    make([]float64, len(fieldPhi)),
	}
	for j := range phi {
		p := Pressure(c.Omega, m.Density, phi[j])
		a.Pressure[j] = p
		a.Intensity[j] = Intensity(p, v[j])
		a.Decibel[j] = Decibel(p, m.ReferencePressure)
		a.Phase[j] = Phase(p)
	}
	for j := range fieldPhi {
		p := Pressure(c.Omega, m.Density, fieldPhi[j])
		a.FieldPressure[j] = p
		a.FieldDecibel[j] = Decibel(p, m.ReferencePressure)
		a.FieldPhase[j] = Phase(p)
	}
	return a, nil
}

// BandPower is the integrated power of one Band.
type BandPower struct {
	Band
	Power float64 // W (area-weighted) or W/m² sum (unweighted)
}

// Summary holds the aggregate quantities of one case.
type Summary struct {
	Policy              PowerPolicy
	Power               float64
	BaffledPower        float64
	RadiationRatio      float64
	Bands               []BandPower
	MechanicalImpedance complex128
}

// Summarize integrates the element intensities under the given policy.
// v must be the element velocities the Acoustics were derived from and
// areas the element areas.
func (a *Acoustics) Summarize(policy PowerPolicy, v []complex128, areas []float64, m Medium, bands []Band) (Summary, error) {
	if len(v) != len(a.Intensity) || len(areas) != len(a.Intensity) {
		return Summary{}, fmt.Errorf("%w: %d elements, %d velocities, %d areas",
			bemerr.ErrBounds, len(a.Intensity), len(v), len(areas))
	}

	s := Summary{Policy: policy}
	n := len(a.Intensity)
	var err error
	switch policy {
	case Unweighted:
		s.Power = UnweightedPower(a.Intensity)
		s.BaffledPower = BaffledPower(v, m)
	case AreaWeighted:
		if s.Power, err = AreaWeightedPower(a.Intensity, areas, 0, n); err != nil {
			return Summary{}, err
		}
		s.BaffledPower = AreaWeightedBaffledPower(v, areas, m)
	default:
		return Summary{}, fmt.Errorf("unknown power policy %q", policy)
	}
	s.RadiationRatio = RadiationRatio(s.Power, s.BaffledPower)

	for _, b := range bands {
		var p float64
		if b.From < 0 || b.To > n || b.From > b.To {
			return Summary{}, fmt.Errorf("%w: band %q [%d,%d) outside [0,%d)", bemerr.ErrBounds, b.Name, b.From, b.To, n)
		}
		if policy == Unweighted {
			p = UnweightedPower(a.Intensity[b.From:b.To])
		} else if p, err = AreaWeightedPower(a.Intensity, areas, b.From, b.To); err != nil {
			return Summary{}, err
		}
		s.Bands = append(s.Bands, BandPower{Band: b, Power: p})
	}

	s.MechanicalImpedance = MechanicalImpedance(a.Pressure, v, areas)
	return s, nil
}

// Band returns the power of the named band and whether it exists.
func (s Summary) Band(name string) (float64, bool) {
	for _, b := range s.Bands {
		if b.Name == name {
			return b.Power, true
		}
	}
	return 0, false
}
