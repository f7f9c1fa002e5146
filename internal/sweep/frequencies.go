// Package sweep drives a frequency sweep: for every frequency it derives
// the wavenumber, hands the case to a solver.Gateway and post-processes the
// returned field.
package sweep

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// maxFrequencies limits generated frequency lists.
const maxFrequencies = 10000

// LinearFrequencies returns f_i = step·i for i = 1..count.
func LinearFrequencies(step float64, count int) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("frequency step must be positive, got %g", step)
	}
	if count <= 0 || count > maxFrequencies {
		return nil, fmt.Errorf("frequency count must be in [1,%d], got %d", maxFrequencies, count)
	}
	if count == 1 {
		return []float64{step}, nil
	}
	out := make([]float64, count)
	floats.Span(out, step, step*float64(count))
	return out, nil
}

// RangeFrequencies returns min, min+step, ... up to and including max.
func RangeFrequencies(min, max, step float64) ([]float64, error) {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("frequency range %g:%g:%g is not finite", min, max, step)
		}
	}
	if !(step > 0) {
		return nil, fmt.Errorf("frequency step must be positive, got %g", step)
	}
	if min > max {
		return nil, fmt.Errorf("frequency range %g:%g is empty", min, max)
	}
	n := math.Floor((max-min)/step+1e-9) + 1
	if n > maxFrequencies {
		return nil, fmt.Errorf("frequency range %g:%g:%g gives %.0f values, limit is %d", min, max, step, n, maxFrequencies)
	}
	count := int(n)
	if count < 1 {
		return nil, fmt.Errorf("frequency range %g:%g:%g is empty", min, max, step)
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	return out, nil
}

// ParseFrequencies parses either a "min:max:step" range or a
// comma-separated list of frequencies in Hz.
func ParseFrequencies(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty frequency list")
	}
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid range format %q: expected min:max:step", s)
		}
		var v [3]float64
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid range value %q: %w", p, err)
			}
			v[i] = f
		}
		return RangeFrequencies(v[0], v[1], v[2])
	}

	var out []float64
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", p, err)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty frequency list")
	}
	return out, nil
}
