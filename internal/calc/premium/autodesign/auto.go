package autodesign

import (
	"fmt"
	"log/slog"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/geom"
)

// Correction records how one run was brought within the slope limits.
type Correction struct {
	Run       int         `json:"run"`
	FromSlope float64     `json:"from_slope"`
	ToSlope   float64     `json:"to_slope"`
	End       geom.Point3 `json:"end"`
}

type Result struct {
	Input       stairs.Input  `json:"input"`
	Corrections []Correction  `json:"corrections"`
	Result      stairs.Result `json:"result"`
	Notes       string        `json:"notes"`
}

// Flight moves the height pick of every non-compliant run to the corrected
// end, so the following runs start from the corrected level, and recomputes
// the flight.
func Flight(in stairs.Input, logger *slog.Logger) (Result, error) {
	if len(in.Runs) == 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	opts := in.Options()
	b := stairs.NewBuilder(opts, logger)

	out := Result{Input: in, Corrections: []Correction{}}
	out.Input.Runs = make([]stairs.Pick, len(in.Runs))
	for i, p := range in.Runs {
		start, _, height := b.Resolve(p)
		run := stairs.NewRun(start, height, opts)
		if fixed, ok := stairs.CorrectSlope(run); ok {
			end := fixed.End()
			p.End = end.WithZ(start.Z)
			p.Height = end
			out.Corrections = append(out.Corrections, Correction{
				Run:       i,
				FromSlope: run.Slope(),
				ToSlope:   fixed.Slope(),
				End:       end,
			})
		}
		out.Input.Runs[i] = p
		b.Add(p)
	}

	res, err := stairs.Compute(out.Input, logger)
	if err != nil {
		return Result{}, err
	}
	out.Result = res
	out.Notes = "Run heights adjusted to the nearest slope limit."
	if len(out.Corrections) == 0 {
		out.Notes = "All runs already within slope limits."
	}
	return out, nil
}
