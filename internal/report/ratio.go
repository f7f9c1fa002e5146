package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/alexiusacademia/acousticbem/internal/sweep"
)

// RatioWriter writes one "wavenumber,radiation ratio" line per solved case
// in ascending frequency order.
type RatioWriter struct {
	w *csv.Writer

	// Header adds a "k,ratio" first line.
	Header bool
}

// NewRatioWriter returns a RatioWriter writing to w.
func NewRatioWriter(w io.Writer) *RatioWriter {
	return &RatioWriter{w: csv.NewWriter(w)}
}

// Report implements Reporter.
func (r *RatioWriter) Report(res *sweep.Result) error {
	if err := check(res); err != nil {
		return err
	}
	if r.Header {
		if err := r.w.Write([]string{"k", "ratio"}); err != nil {
			return err
		}
	}
	for _, c := range Ascending(res.Cases) {
		row := []string{
			strconv.FormatFloat(c.Case.Wavenumber, 'g', 10, 64),
			strconv.FormatFloat(c.Summary.RadiationRatio, 'g', 10, 64),
		}
		if err := r.w.Write(row); err != nil {
			return err
		}
	}
	r.w.Flush()
	return r.w.Error()
}

// Ascending returns the cases sorted by frequency. The input is not
// modified; the sort is stable so equal frequencies keep run order.
func Ascending(cases []sweep.CaseResult) []sweep.CaseResult {
	out := append([]sweep.CaseResult(nil), cases...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Case.Frequency < out[j].Case.Frequency
	})
	return out
}
