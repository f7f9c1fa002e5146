package report

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acousticbem/internal/acoustics"
	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
	"github.com/alexiusacademia/acousticbem/internal/monitoring"
	"github.com/alexiusacademia/acousticbem/internal/solver/solvertest"
	"github.com/alexiusacademia/acousticbem/internal/sweep"
)

func run(t *testing.T, fixture string, opts boundary.Options, g *solvertest.Gateway, freqs []float64) *sweep.Result {
	t.Helper()
	monitoring.SetLogger(nil)
	m, err := mesh.Fixture(fixture)
	require.NoError(t, err)
	d, err := sweep.Configure(g, m, acoustics.DefaultMedium(), opts)
	require.NoError(t, err)
	d.ContinueOnError = true
	res, err := d.Run(freqs)
	require.NoError(t, err)
	return res
}

func TestRatioWriterAscending(t *testing.T) {
	g := solvertest.Radiator(func(k float64) float64 { return k / 100 })
	res := run(t, "plate", boundary.Options{Scenario: boundary.ExcitedPlate}, g, []float64{300, 100, 200})

	var buf bytes.Buffer
	require.NoError(t, NewRatioWriter(&buf).Report(res))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	var prev float64
	for i, line := range lines {
		parts := strings.Split(line, ",")
		require.Len(t, parts, 2, "line %d", i+1)
		k, err := strconv.ParseFloat(parts[0], 64)
		require.NoError(t, err)
		ratio, err := strconv.ParseFloat(parts[1], 64)
		require.NoError(t, err)
		assert.Greater(t, k, prev)
		assert.InDelta(t, k/100, ratio, 1e-9)
		prev = k
	}
}

func TestRatioWriterHeader(t *testing.T) {
	g := solvertest.Radiator(func(float64) float64 { return 0.5 })
	res := run(t, "plate", boundary.Options{Scenario: boundary.ExcitedPlate}, g, []float64{100})

	var buf bytes.Buffer
	w := NewRatioWriter(&buf)
	w.Header = true
	require.NoError(t, w.Report(res))
	assert.True(t, strings.HasPrefix(buf.String(), "k,ratio\n"))

	assert.Error(t, w.Report(nil))
}

func TestTextReportCavity(t *testing.T) {
	g := solvertest.Constant(complex(0, 0.01), 1, complex(0.002, 0))
	opts := boundary.Options{
		Scenario:    boundary.PartitionedCavity,
		Opening:     boundary.DefaultCavityOpening,
		ExcitedFrom: boundary.DefaultCavityExcitedFrom,
	}
	res := run(t, "cavity", opts, g, []float64{50})

	var buf bytes.Buffer
	r := &TextReport{W: &buf, BandTitles: map[string]string{sweep.WallBand: "Cavity wall power"}}
	require.NoError(t, r.Report(res))
	out := buf.String()

	assert.Contains(t, out, "TRUNCATED-SPHERE-CAVITY")
	assert.Contains(t, out, "Speed of sound:         344 m/s")
	assert.Contains(t, out, "Opening power (elements 1-6)")
	assert.Contains(t, out, "Cavity wall power (elements 7-36)")
	assert.Contains(t, out, "Radiation ratio")
	assert.Equal(t, 36, strings.Count(out, "+1.0000e-02i"), "one row per element")
}

func TestTextReportFailures(t *testing.T) {
	g := solvertest.Failing(solvertest.Radiator(func(float64) float64 { return 1 }),
		func(k float64) bool { return k > 1 }, bemerr.ErrSingular)
	res := run(t, "plate", boundary.Options{Scenario: boundary.ExcitedPlate}, g, []float64{10, 400})

	var buf bytes.Buffer
	r := &TextReport{W: &buf, SkipElements: true}
	require.NoError(t, r.Report(res))
	out := buf.String()
	assert.Contains(t, out, "1 solved, 1 failed")
	assert.Contains(t, out, "FAILED CASES")
	assert.Contains(t, out, "case 2 (f=400 Hz")
	assert.NotContains(t, out, "index")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestMulti(t *testing.T) {
	g := solvertest.Radiator(func(float64) float64 { return 0.5 })
	res := run(t, "plate", boundary.Options{Scenario: boundary.ExcitedPlate}, g, []float64{100})

	var a, b bytes.Buffer
	err := Multi(NewRatioWriter(&a), nil, &TextReport{W: &b}).Report(res)
	require.NoError(t, err)
	assert.NotEmpty(t, a.String())
	assert.NotEmpty(t, b.String())

	err = Multi(&TextReport{W: failingWriter{}}, NewRatioWriter(&a)).Report(res)
	assert.EqualError(t, err, "disk full")
}
