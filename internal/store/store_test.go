package store

import (
	"log"
	"path/filepath"
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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	monitoring.SetLogger(t.Logf)
	t.Cleanup(func() { monitoring.SetLogger(log.Printf) })
	s, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func cavityResult(t *testing.T) *sweep.Result {
	t.Helper()
	m, err := mesh.Fixture("cavity")
	require.NoError(t, err)
	g := solvertest.Failing(solvertest.Constant(complex(0, 0.01), 1, 0),
		func(k float64) bool { return k > 3 }, bemerr.ErrSingular)
	d, err := sweep.Configure(g, m, acoustics.DefaultMedium(), boundary.Options{
		Scenario:    boundary.PartitionedCavity,
		Opening:     boundary.DefaultCavityOpening,
		ExcitedFrom: boundary.DefaultCavityExcitedFrom,
	})
	require.NoError(t, err)
	d.ContinueOnError = true
	res, err := d.Run([]float64{100, 50, 500})
	require.NoError(t, err)
	require.Len(t, res.Cases, 2)
	require.Len(t, res.Failures, 1)
	return res
}

func TestMigrations(t *testing.T) {
	s := openTestStore(t)
	version, dirty, err := s.MigrateVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	// Reopening is a no-op migration.
	require.NoError(t, s.MigrateUp())

	require.NoError(t, s.MigrateDown())
	version, _, err = s.MigrateVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	require.NoError(t, s.MigrateUp())
}

func TestSaveAndLoadRun(t *testing.T) {
	s := openTestStore(t)
	res := cavityResult(t)
	require.NoError(t, s.Report(res))

	runs, err := s.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	r := runs[0]
	assert.Equal(t, res.RunID, r.ID)
	assert.Equal(t, "cavity", r.Name)
	assert.Equal(t, "truncated-sphere-cavity", r.Mesh)
	assert.Equal(t, 36, r.Elements)
	assert.Equal(t, 344.0, r.SoundSpeed)
	assert.Equal(t, 2, r.Cases)
	assert.Equal(t, 1, r.Failures)

	cases, err := s.Cases(res.RunID)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, 50.0, cases[0].Frequency, "ascending frequency")
	assert.Equal(t, 1, cases[0].Index)
	assert.Equal(t, 100.0, cases[1].Frequency)

	want := res.Cases[1].Summary
	assert.InDelta(t, want.Power, cases[0].Power, 1e-12)
	assert.InDelta(t, want.RadiationRatio, cases[0].Ratio, 1e-12)
	assert.Equal(t, "area-weighted", cases[0].Policy)
	open, _ := want.Band(sweep.OpeningBand)
	wall, _ := want.Band(sweep.WallBand)
	assert.InDelta(t, open, cases[0].Bands[sweep.OpeningBand], 1e-12)
	assert.InDelta(t, wall, cases[0].Bands[sweep.WallBand], 1e-12)
	assert.InDelta(t, real(want.MechanicalImpedance), real(cases[0].Impedance), 1e-9)

	failures, err := s.Failures(res.RunID)
	require.NoError(t, err)
	assert.Contains(t, failures[2], "case 3 (f=500 Hz")
}

func TestSaveRunRejectsDuplicates(t *testing.T) {
	s := openTestStore(t)
	res := cavityResult(t)
	require.NoError(t, s.SaveRun(res))
	assert.Error(t, s.SaveRun(res))

	runs, err := s.Runs()
	require.NoError(t, err)
	assert.Len(t, runs, 1, "failed save is rolled back")

	assert.Error(t, s.SaveRun(nil))
}

func TestDeleteRunCascades(t *testing.T) {
	s := openTestStore(t)
	res := cavityResult(t)
	require.NoError(t, s.SaveRun(res))
	require.NoError(t, s.DeleteRun(res.RunID))

	cases, err := s.Cases(res.RunID)
	require.NoError(t, err)
	assert.Empty(t, cases)
	failures, err := s.Failures(res.RunID)
	require.NoError(t, err)
	assert.Empty(t, failures)

	var bands int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM case_bands`).Scan(&bands))
	assert.Zero(t, bands)

	assert.Error(t, s.DeleteRun(res.RunID))
}
