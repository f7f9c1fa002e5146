// Package acoustics converts boundary-element solutions (velocity potential
// and normal velocity) into physical acoustic quantities.
package acoustics

import (
	"fmt"
	"math"
)

// Air at roughly 20 °C and the standard airborne reference pressure.
const (
	DefaultSoundSpeed = 344.0 // m/s
	DefaultDensity    = 1.205 // kg/m³
	ReferencePressure = 2e-5  // Pa, 0 dB SPL
)

// Medium holds the run-wide constants of the acoustic medium. It is passed
// by value and never mutated during a run.
type Medium struct {
	SoundSpeed        float64 `json:"sound_speed"`        // c (m/s)
	Density           float64 `json:"density"`            // ρ (kg/m³)
	ReferencePressure float64 `json:"reference_pressure"` // p_ref (Pa)
}

// DefaultMedium returns air with the standard reference pressure.
func DefaultMedium() Medium {
	return Medium{
		SoundSpeed:        DefaultSoundSpeed,
		Density:           DefaultDensity,
		ReferencePressure: ReferencePressure,
	}
}

// Validate checks that every constant is finite and positive.
func (m Medium) Validate() error {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"sound speed", m.SoundSpeed},
		{"density", m.Density},
		{"reference pressure", m.ReferencePressure},
	} {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("invalid medium: %s must be positive and finite, got %g", p.name, p.value)
		}
	}
	return nil
}

// Impedance returns the characteristic impedance ρc (Pa·s/m).
func (m Medium) Impedance() float64 {
	return m.Density * m.SoundSpeed
}
