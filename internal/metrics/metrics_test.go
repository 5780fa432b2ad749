package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairwell/internal/calc/stairs"
)

func TestFlights_ObserveFlight(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := NewFlights(reg)

	f.ObserveFlight(stairs.Result{
		Runs: []stairs.RunResult{{Valid: true}, {Valid: false}, {Valid: true}},
		Landings: []stairs.LandingResult{
			{Valid: true, Surface: &stairs.Surface{}},
			{Valid: false},
			{Valid: true},
		},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(f.runs.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.runs.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.landings.WithLabelValues(OutcomeSurface)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.landings.WithLabelValues(OutcomeAmbiguous)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.landings.WithLabelValues(OutcomeFailed)))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
