package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearFrequencies(t *testing.T) {
	f, err := LinearFrequencies(10, 100)
	require.NoError(t, err)
	require.Len(t, f, 100)
	assert.Equal(t, 10.0, f[0])
	assert.InDelta(t, 500.0, f[49], 1e-9)
	assert.Equal(t, 1000.0, f[99])

	f, err = LinearFrequencies(50, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{50}, f)

	for _, tc := range []struct {
		name  string
		step  float64
		count int
	}{
		{"zero_step", 0, 10},
		{"negative_step", -1, 10},
		{"zero_count", 10, 0},
		{"too_many", 1, maxFrequencies + 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LinearFrequencies(tc.step, tc.count)
			assert.Error(t, err)
		})
	}
}

func TestParseFrequencies(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{in: "50", want: []float64{50}},
		{in: "50, 100,200", want: []float64{50, 100, 200}},
		{in: "10:50:10", want: []float64{10, 20, 30, 40, 50}},
		{in: "100:100:1", want: []float64{100}},
		{in: "", wantErr: true},
		{in: " , ", wantErr: true},
		{in: "10:50", wantErr: true},
		{in: "50:10:10", wantErr: true},
		{in: "10:50:0", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "10:inf:10", wantErr: true},
		{in: "nan:100:10", wantErr: true},
		{in: "10:100:inf", wantErr: true},
		{in: "-inf:10:1", wantErr: true},
		{in: "10:100:nan", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFrequencies(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, got, 1e-9)
		})
	}
}

func TestRangeFrequenciesRejectsNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, tc := range []struct {
		name           string
		min, max, step float64
	}{
		{"nan_min", nan, 100, 10},
		{"nan_max", 10, nan, 10},
		{"nan_step", 10, 100, nan},
		{"inf_max", 10, inf, 10},
		{"neg_inf_min", -inf, 10, 1},
		{"inf_step", 10, 100, inf},
		{"count_overflow", 0, 1e300, 1e-300},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var f []float64
			var err error
			require.NotPanics(t, func() { f, err = RangeFrequencies(tc.min, tc.max, tc.step) })
			assert.Error(t, err)
			assert.Nil(t, f)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "post-process", PostProcess.String())
	assert.Equal(t, "aborted", Aborted.String())
	assert.Equal(t, "unknown", State(42).String())
}
