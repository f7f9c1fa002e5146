package acoustics

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
)

// Case is one excitation frequency of a sweep with its derived wavenumber
// and angular frequency. Omega stays real: no complex-frequency use exists.
type Case struct {
	Frequency  float64 // f (Hz)
	Wavenumber float64 // k = 2πf/c (1/m)
	Omega      float64 // ω = 2πf (rad/s)
}

// NewCase derives k and ω for frequency f. It returns ErrInvalidFrequency
// unless k is finite and positive.
func NewCase(f float64, m Medium) (Case, error) {
	k := FrequencyToWavenumber(f, m.SoundSpeed)
	if !(k > 0) || math.IsInf(k, 0) {
		return Case{}, fmt.Errorf("%w: f=%g Hz gives k=%g", bemerr.ErrInvalidFrequency, f, k)
	}
	return Case{Frequency: f, Wavenumber: k, Omega: 2 * math.Pi * f}, nil
}

// FrequencyToWavenumber returns 2πf/c.
func FrequencyToWavenumber(f, c float64) float64 {
	return 2 * math.Pi * f / c
}

// WavenumberToFrequency returns kc/2π.
func WavenumberToFrequency(k, c float64) float64 {
	return k * c / (2 * math.Pi)
}
