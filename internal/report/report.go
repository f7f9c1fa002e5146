// Package report writes sweep results: the plain (wavenumber, ratio) pair
// file of the plate sweep and the structured per-element text report of the
// cavity run.
package report

import (
	"errors"

	"github.com/alexiusacademia/acousticbem/internal/sweep"
)

// Reporter persists one sweep result.
type Reporter interface {
	Report(res *sweep.Result) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(res *sweep.Result) error

// Report implements Reporter.
func (f ReporterFunc) Report(res *sweep.Result) error { return f(res) }

// Multi reports to every reporter in order and joins their errors.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(res *sweep.Result) error {
		var errs []error
		for _, r := range reporters {
			if r == nil {
				continue
			}
			if err := r.Report(res); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

var errNoResult = errors.New("report: no result")

func check(res *sweep.Result) error {
	if res == nil {
		return errNoResult
	}
	return nil
}
