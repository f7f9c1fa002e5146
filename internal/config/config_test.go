package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acousticbem/internal/acoustics"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/solver"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadPlateDefaults(t *testing.T) {
	run, err := LoadFromFile(writeConfig(t, `{
		"scenario": "plate",
		"frequencies": {"step": 10, "count": 100},
		"outputs": {"ratio_csv": "ratio.csv"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "plate", run.Mesh)
	assert.Equal(t, "plate", run.Name)
	assert.Equal(t, acoustics.DefaultMedium(), *run.Medium)
	assert.Equal(t, solver.DefaultOptions(), *run.Solver)
	assert.Equal(t, solver.DefaultCapacity(), *run.Capacity)
	assert.Nil(t, run.Cavity)
	assert.Equal(t, "ratio.csv", run.Outputs.RatioCSV)

	freqs, err := run.Frequencies.List()
	require.NoError(t, err)
	assert.Len(t, freqs, 100)
	assert.Equal(t, 1000.0, freqs[99])
}

func TestLoadCavity(t *testing.T) {
	run, err := LoadFromFile(writeConfig(t, `{
		"name": "cavity-50",
		"scenario": "cavity",
		"frequencies": {"values": [50]},
		"medium": {"sound_speed": 343, "density": 1.2},
		"field_points": [{"x": 0, "y": 0, "z": 0}],
		"continue_on_error": true
	}`))
	require.NoError(t, err)

	want := boundary.Options{
		Scenario:    boundary.PartitionedCavity,
		Opening:     boundary.DefaultCavityOpening,
		ExcitedFrom: boundary.DefaultCavityExcitedFrom,
	}
	if diff := cmp.Diff(want, run.BoundaryOptions()); diff != "" {
		t.Errorf("BoundaryOptions() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 343.0, run.Medium.SoundSpeed)
	assert.Equal(t, acoustics.ReferencePressure, run.Medium.ReferencePressure)
	assert.Len(t, run.FieldPoints, 1)
	assert.True(t, run.ContinueOnError)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown_scenario", `{"scenario": "room", "frequencies": {"values": [50]}}`},
		{"no_frequencies", `{"scenario": "plate"}`},
		{"negative_frequency", `{"scenario": "plate", "frequencies": {"values": [50, -1]}}`},
		{"bad_range", `{"scenario": "plate", "frequencies": {"range": "10:5:1"}}`},
		{"bad_medium", `{"scenario": "plate", "frequencies": {"values": [50]}, "medium": {"sound_speed": 0, "density": 1.2}}`},
		{"bad_tolerance", `{"scenario": "plate", "frequencies": {"values": [50]}, "solver": {"validate_geometry": true}}`},
		{"bad_cavity", `{"scenario": "cavity", "frequencies": {"values": [50]}, "cavity": {"opening_elements": 6, "excited_from": 2}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tc.body))
			require.Error(t, err)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeConfig(t, `{"scenario": `))
	assert.ErrorContains(t, err, "parse run config")
}

func TestFrequenciesRange(t *testing.T) {
	f := Frequencies{Range: "100:300:100"}
	got, err := f.List()
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300}, got)
}
