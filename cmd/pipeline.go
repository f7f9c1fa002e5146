package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/acousticbem/internal/bem"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/config"
	"github.com/alexiusacademia/acousticbem/internal/diagram"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
	"github.com/alexiusacademia/acousticbem/internal/report"
	"github.com/alexiusacademia/acousticbem/internal/solver"
	"github.com/alexiusacademia/acousticbem/internal/store"
	"github.com/alexiusacademia/acousticbem/internal/sweep"
)

// gatewayFor returns the reference solver of a scenario.
func gatewayFor(s boundary.Scenario, maxCondition float64) solver.Gateway {
	if s == boundary.PartitionedCavity {
		return &bem.Interior{MaxCondition: maxCondition}
	}
	return &bem.Rayleigh{MaxCondition: maxCondition}
}

// executeRun runs the sweep described by cfg, prints a summary to out and
// writes the configured outputs. Nothing is written when the sweep aborts.
func executeRun(cfg *config.Run, maxCondition float64, out io.Writer) (*sweep.Result, error) {
	freqs, err := cfg.Frequencies.List()
	if err != nil {
		return nil, err
	}
	m, err := mesh.Open(cfg.Mesh)
	if err != nil {
		return nil, err
	}

	opts := cfg.BoundaryOptions()
	d, err := sweep.Configure(gatewayFor(opts.Scenario, maxCondition), m, *cfg.Medium, opts)
	if err != nil {
		return nil, err
	}
	d.Name = cfg.Name
	d.FieldPoints = cfg.FieldPoints
	d.Options = *cfg.Solver
	d.Capacity = *cfg.Capacity
	d.ContinueOnError = cfg.ContinueOnError
	if cfg.IncidentDirection != nil {
		d.Incident = sweep.PlaneWave(*cfg.IncidentDirection)
	}

	res, err := d.Run(freqs)
	if err != nil {
		return nil, err
	}

	printSummary(out, cfg, res)
	if err := writeOutputs(cfg, res, out); err != nil {
		return res, err
	}
	return res, nil
}

func printSummary(out io.Writer, cfg *config.Run, res *sweep.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     FREQUENCY SWEEP - %s\n", res.Mesh.Name)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Scenario:\t%s\n", cfg.Scenario)
	fmt.Fprintf(w, "  Mesh:\t%d vertices, %d elements\n", res.Mesh.NumVertices(), res.Mesh.NumElements())
	fmt.Fprintf(w, "  Speed of sound (c):\t%.1f m/s\n", res.Medium.SoundSpeed)
	fmt.Fprintf(w, "  Density (ρ):\t%.3f kg/m³\n", res.Medium.Density)
	fmt.Fprintf(w, "  Field points:\t%d\n", len(cfg.FieldPoints))
	fmt.Fprintf(w, "  Run:\t%s\n", res.RunID)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "f (Hz)\tk (1/m)\tpower (W)\tratio\t")
	bandNames := bandColumns(res)
	for _, b := range bandNames {
		fmt.Fprintf(w, "%s (W)\t", b)
	}
	fmt.Fprintln(w)
	for _, c := range report.Ascending(res.Cases) {
		fmt.Fprintf(w, "%.1f\t%.5f\t% .5e\t%.5f\t", c.Case.Frequency, c.Case.Wavenumber, c.Summary.Power, c.Summary.RadiationRatio)
		for _, b := range bandNames {
			p, _ := c.Summary.Band(b)
			fmt.Fprintf(w, "% .5e\t", p)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)

	if len(res.Failures) > 0 {
		fmt.Fprintln(out, "FAILED CASES:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		for _, f := range res.Failures {
			fmt.Fprintf(out, "  ⚠ %v\n", f)
		}
		fmt.Fprintln(out)
	}
}

func bandColumns(res *sweep.Result) []string {
	if len(res.Cases) == 0 {
		return nil
	}
	var names []string
	for _, b := range res.Cases[0].Summary.Bands {
		names = append(names, b.Name)
	}
	return names
}

func writeOutputs(cfg *config.Run, res *sweep.Result, out io.Writer) error {
	o := cfg.Outputs
	var reporters []report.Reporter
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	// "-" writes to out.
	create := func(path string) (io.Writer, error) {
		if path == "-" {
			return out, nil
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		return f, nil
	}

	if o.RatioCSV != "" {
		f, err := create(o.RatioCSV)
		if err != nil {
			return err
		}
		reporters = append(reporters, report.NewRatioWriter(f))
	}
	if o.Report != "" {
		f, err := create(o.Report)
		if err != nil {
			return err
		}
		reporters = append(reporters, &report.TextReport{
			W:          f,
			BandTitles: map[string]string{sweep.WallBand: "Cavity wall power"},
		})
	}
	if o.DB != "" {
		s, err := store.Open(o.DB)
		if err != nil {
			return err
		}
		defer s.Close()
		reporters = append(reporters, s)
	}
	if err := report.Multi(reporters...).Report(res); err != nil {
		return err
	}
	for _, f := range files {
		if err := f.Close(); err != nil {
			return err
		}
	}
	files = nil

	curve := ratioCurve(res)
	if o.Chart && len(curve.Points) > 0 {
		chart, err := diagram.DrawASCIIRatioChart(curve, 60, 12)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, chart)
		fmt.Fprintln(out)
	}
	if o.Plot != "" && len(curve.Points) > 0 {
		path, err := diagram.ExportRatioDiagram(curve, o.Plot)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  Plot written to %s\n", path)
	}

	var written []string
	for _, p := range []string{o.RatioCSV, o.Report, o.DB} {
		if p != "" && p != "-" {
			written = append(written, p)
		}
	}
	if len(written) > 0 {
		fmt.Fprint(out, diagram.DrawSummaryBox("OUTPUTS", written))
		fmt.Fprintln(out)
	}
	return nil
}

func ratioCurve(res *sweep.Result) diagram.RatioCurve {
	curve := diagram.RatioCurve{Title: "Radiation ratio - " + res.Mesh.Name}
	for _, c := range report.Ascending(res.Cases) {
		curve.Points = append(curve.Points, diagram.Point{X: c.Case.Wavenumber, Y: c.Summary.RadiationRatio})
	}
	return curve
}
