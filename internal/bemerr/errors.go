// Package bemerr holds the error taxonomy shared by the mesh, boundary,
// solver and sweep packages. Callers match with errors.Is / errors.As.
package bemerr

import (
	"errors"
	"fmt"
)

var (
	// ErrGeometry is returned for a degenerate element or a mesh that fails
	// the geometric consistency check.
	ErrGeometry = errors.New("bem: geometry error")

	// ErrBounds is returned when a vertex, element or field point count
	// exceeds its configured capacity.
	ErrBounds = errors.New("bem: capacity exceeded")

	// ErrIllPosed is returned when an element has alpha = beta = 0.
	ErrIllPosed = errors.New("bem: ill-posed boundary condition")

	// ErrSingular is returned when the discrete system is singular or
	// too ill-conditioned to solve, e.g. near an interior resonance.
	ErrSingular = errors.New("bem: singular system")

	// ErrInvalidFrequency is returned when the derived wavenumber is not positive.
	ErrInvalidFrequency = errors.New("bem: invalid frequency")
)

// ElementError attaches an element index to one of the sentinel errors.
type ElementError struct {
	Index  int
	Detail string
	Err    error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%v: element %d: %s", e.Err, e.Index+1, e.Detail)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// CaseError records which frequency case failed.
type CaseError struct {
	Case       int
	Frequency  float64
	Wavenumber float64
	Err        error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("case %d (f=%.4g Hz, k=%.6g): %v", e.Case+1, e.Frequency, e.Wavenumber, e.Err)
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

// Element builds an ElementError for index i.
func Element(err error, i int, format string, args ...interface{}) error {
	return &ElementError{Index: i, Detail: fmt.Sprintf(format, args...), Err: err}
}
