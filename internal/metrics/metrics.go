package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"Stairwell/internal/calc/stairs"
)

// Landing outcomes.
const (
	OutcomeSurface   = "surface"
	OutcomeAmbiguous = "ambiguous"
	OutcomeFailed    = "failed"
)

// Flights counts computed runs and landings.
type Flights struct {
	runs     *prometheus.CounterVec
	landings *prometheus.CounterVec
}

// NewFlights creates the collectors and registers them with reg.
func NewFlights(reg prometheus.Registerer) *Flights {
	f := &Flights{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stairs_runs_total",
				Help: "Stair runs computed, by code compliance",
			},
			[]string{"valid"},
		),
		landings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stairs_landings_total",
				Help: "Landings computed, by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(f.runs, f.landings)
	return f
}

func (f *Flights) ObserveFlight(res stairs.Result) {
	for _, r := range res.Runs {
		f.runs.WithLabelValues(strconv.FormatBool(r.Valid)).Inc()
	}
	for _, l := range res.Landings {
		f.landings.WithLabelValues(outcome(l)).Inc()
	}
}

func outcome(l stairs.LandingResult) string {
	switch {
	case !l.Valid:
		return OutcomeAmbiguous
	case l.Surface == nil:
		return OutcomeFailed
	}
	return OutcomeSurface
}
