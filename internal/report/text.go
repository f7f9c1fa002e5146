package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/acousticbem/internal/acoustics"
	"github.com/alexiusacademia/acousticbem/internal/sweep"
)

const rule = "───────────────────────────────────────────────────────────────"

// TextReport writes a human readable report of every case: medium and
// wavenumber, one row per boundary element (potential, pressure, velocity,
// intensity, level, phase), one row per field point, and the aggregate
// powers. Failed cases are listed at the end.
type TextReport struct {
	W io.Writer

	// BandTitles renames bands in the aggregate section, e.g.
	// "wall" -> "Cavity wall power".
	BandTitles map[string]string

	// SkipElements omits the per-element table.
	SkipElements bool
}

// Report implements Reporter.
func (t *TextReport) Report(res *sweep.Result) error {
	if err := check(res); err != nil {
		return err
	}
	ew := &errWriter{w: t.W}

	ew.printf("═══════════════════════════════════════════════════════════════\n")
	ew.printf("     ACOUSTIC BEM RESULTS - %s\n", strings.ToUpper(meshName(res)))
	ew.printf("═══════════════════════════════════════════════════════════════\n")
	ew.printf("  Run:                    %s\n", res.RunID)
	ew.printf("  Density of medium:      %g kg/m^3\n", res.Medium.Density)
	ew.printf("  Speed of sound:         %g m/s\n", res.Medium.SoundSpeed)
	ew.printf("  Cases:                  %d solved, %d failed\n\n", len(res.Cases), len(res.Failures))

	for _, c := range Ascending(res.Cases) {
		t.writeCase(ew, c)
	}

	if len(res.Failures) > 0 {
		ew.printf("FAILED CASES:\n%s\n", rule)
		for _, f := range res.Failures {
			ew.printf("  %v\n", f)
		}
		ew.printf("\n")
	}
	return ew.err
}

func (t *TextReport) writeCase(ew *errWriter, c sweep.CaseResult) {
	a := c.Acoustics
	ew.printf("Wavenumber (Frequency): %.6g (%.6g Hz)\n%s\n", c.Case.Wavenumber, c.Case.Frequency, rule)

	if !t.SkipElements {
		tw := tabwriter.NewWriter(ew, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "index\tpotential\tpressure\tvelocity\tintensity\tlevel (dB)\tphase\t\n")
		for i := range a.Pressure {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t% .4e\t%.2f\t% .4f\t\n", i+1,
				complexString(c.Field.Phi[i]), complexString(a.Pressure[i]), complexString(c.Field.V[i]),
				a.Intensity[i], a.Decibel[i], a.Phase[i])
		}
		tw.Flush()
		ew.printf("\n")
	}

	if len(a.FieldPressure) > 0 {
		tw := tabwriter.NewWriter(ew, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "point\tpotential\tpressure\tmagnitude (dB)\tphase\t\n")
		for i := range a.FieldPressure {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t% .4f\t\n", i+1,
				complexString(c.Field.FieldPhi[i]), complexString(a.FieldPressure[i]), a.FieldDecibel[i], a.FieldPhase[i])
		}
		tw.Flush()
		ew.printf("\n")
	}

	s := c.Summary
	tw := tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
	for _, b := range s.Bands {
		fmt.Fprintf(tw, "  %s (elements %d-%d):\t% .6e W\n", t.bandTitle(b.Band), b.From+1, b.To, b.Power)
	}
	fmt.Fprintf(tw, "  Radiated power (%s):\t% .6e W\n", s.Policy, s.Power)
	fmt.Fprintf(tw, "  Baffled piston power:\t% .6e W\n", s.BaffledPower)
	fmt.Fprintf(tw, "  Radiation ratio:\t% .6f\n", s.RadiationRatio)
	fmt.Fprintf(tw, "  Mechanical impedance:\t%s N·s/m\n", complexString(s.MechanicalImpedance))
	tw.Flush()
	ew.printf("\n")
}

func (t *TextReport) bandTitle(b acoustics.Band) string {
	if title, ok := t.BandTitles[b.Name]; ok {
		return title
	}
	if b.Name == "" {
		return "Band power"
	}
	return strings.ToUpper(b.Name[:1]) + b.Name[1:] + " power"
}

func meshName(res *sweep.Result) string {
	if res.Mesh == nil || res.Mesh.Name == "" {
		return "unnamed mesh"
	}
	return res.Mesh.Name
}

func complexString(z complex128) string {
	return fmt.Sprintf("% .4e%+.4ei", real(z), imag(z))
}

// errWriter keeps the first write error so the report can be written
// without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e, format, args...)
}
