package acoustics

import (
	"math"
	"math/cmplx"
)

// Pressure returns the sound pressure p = iρωφ for a velocity potential φ.
func Pressure(omega, density float64, phi complex128) complex128 {
	return complex(0, density*omega) * phi
}

// Intensity returns the time-averaged normal intensity Re(conj(p)·v)/2 (W/m²).
func Intensity(p, v complex128) float64 {
	return real(cmplx.Conj(p)*v) / 2
}

// Decibel returns the sound pressure level 20·log10(|p|/p_ref). A zero
// pressure gives -Inf.
func Decibel(p complex128, pRef float64) float64 {
	return 20 * math.Log10(cmplx.Abs(p)/pRef)
}

// Phase returns atan2(Im p, Re p) normalised to (-π, π].
func Phase(p complex128) float64 {
	ph := math.Atan2(imag(p), real(p))
	if ph == -math.Pi {
		return math.Pi
	}
	return ph
}
