package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acousticbem/internal/bem"
	"github.com/alexiusacademia/acousticbem/internal/config"
	"github.com/alexiusacademia/acousticbem/internal/monitoring"
	"github.com/alexiusacademia/acousticbem/internal/store"
)

func TestExecuteRunPlate(t *testing.T) {
	monitoring.SetLogger(nil)
	dir := t.TempDir()
	cfg := &config.Run{
		Scenario:    "plate",
		Frequencies: config.Frequencies{Range: "100:400:100"},
		Outputs: config.Outputs{
			RatioCSV: filepath.Join(dir, "ratio.csv"),
			Plot:     filepath.Join(dir, "ratio.svg"),
			Chart:    true,
			DB:       filepath.Join(dir, "results.db"),
		},
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	res, err := executeRun(cfg, bem.DefaultMaxCondition, &out)
	require.NoError(t, err)
	require.Len(t, res.Cases, 4)

	assert.Contains(t, out.String(), "FREQUENCY SWEEP - baffled-plate")
	assert.Contains(t, out.String(), "OUTPUTS")

	data, err := os.ReadFile(cfg.Outputs.RatioCSV)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 4)

	_, err = os.Stat(cfg.Outputs.Plot)
	assert.NoError(t, err)

	s, err := store.Open(cfg.Outputs.DB)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, res.RunID, runs[0].ID)
}

func TestExecuteRunCavityReportToStdout(t *testing.T) {
	monitoring.SetLogger(nil)
	cfg := &config.Run{
		Scenario:    "cavity",
		Frequencies: config.Frequencies{Values: []float64{50}},
		Outputs:     config.Outputs{Report: "-"},
	}
	cfg.ApplyDefaults()

	var out bytes.Buffer
	_, err := executeRun(cfg, bem.DefaultMaxCondition, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Opening power (elements 1-6)")
	assert.Contains(t, out.String(), "Cavity wall power (elements 7-36)")
	assert.NotContains(t, out.String(), "OUTPUTS")
}

func TestExecuteRunAbortWritesNothing(t *testing.T) {
	monitoring.SetLogger(nil)
	dir := t.TempDir()
	cfg := &config.Run{
		Scenario:    "plate",
		Frequencies: config.Frequencies{Values: []float64{100}},
		Outputs:     config.Outputs{RatioCSV: filepath.Join(dir, "ratio.csv")},
	}
	cfg.ApplyDefaults()

	var out bytes.Buffer
	_, err := executeRun(cfg, 0.5, &out)
	require.Error(t, err)
	_, statErr := os.Stat(cfg.Outputs.RatioCSV)
	assert.True(t, os.IsNotExist(statErr), "no report on abort")
}

func TestFieldPoints(t *testing.T) {
	pts, err := fieldPoints([]float64{0, 0, 0, 1, 2, 3})
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, 3.0, pts[1].Z)

	_, err = fieldPoints([]float64{1, 2})
	assert.Error(t, err)
}
