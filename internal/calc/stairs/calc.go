package stairs

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"Stairwell/internal/geom"
	"Stairwell/internal/logging"
)

type Input struct {
	WidthMM      float64 `json:"width_mm" yaml:"width_mm"`
	RailHeightMM float64 `json:"rail_height_mm" yaml:"rail_height_mm"`
	LeftRail     *bool   `json:"left_rail,omitempty" yaml:"left_rail,omitempty"`
	RightRail    *bool   `json:"right_rail,omitempty" yaml:"right_rail,omitempty"`
	Landing      *bool   `json:"landing,omitempty" yaml:"landing,omitempty"`
	Runs         []Pick  `json:"runs" yaml:"runs"`
}

// Options resolves the input flags against the defaults.
func (in Input) Options() Options {
	o := DefaultOptions()
	o.Width = in.WidthMM
	o.RailHeight = in.RailHeightMM
	if in.LeftRail != nil {
		o.LeftRail = *in.LeftRail
	}
	if in.RightRail != nil {
		o.RightRail = *in.RightRail
	}
	if in.Landing != nil {
		o.Landing = *in.Landing
	}
	return o.Clamp()
}

type RunResult struct {
	Start        geom.Point3    `json:"start"`
	End          geom.Point3    `json:"end"`
	NumSteps     int            `json:"num_steps"`
	RiserMM      float64        `json:"riser_mm"`
	TreadMM      float64        `json:"tread_mm"`
	Slope        float64        `json:"slope"`
	Valid        bool           `json:"valid"`
	CorrectedEnd *geom.Point3   `json:"corrected_end,omitempty"`
	StepSurface  geom.Extrusion `json:"step_surface"`
	Rails        []geom.Line    `json:"rails"`
	Balusters    []geom.Line    `json:"balusters"`
}

type LandingResult struct {
	BottomRun    int             `json:"bottom_run"`
	TopRun       int             `json:"top_run"`
	TurnAngleDeg float64         `json:"turn_angle_deg"`
	NearestSide  NearSide        `json:"nearest_side"`
	Valid        bool            `json:"valid"`
	Surface      *Surface        `json:"surface,omitempty"`
	AreaMM2      float64         `json:"area_mm2"`
	Railings     []geom.Polyline `json:"railings,omitempty"`
	Error        string          `json:"error,omitempty"`
}

type Result struct {
	Runs        []RunResult     `json:"runs"`
	Landings    []LandingResult `json:"landings"`
	Diagnostics []string        `json:"diagnostics"`
	OK          bool            `json:"ok"`
	Notes       string          `json:"notes"`
}

// Calculate builds every run and landing of a flight.
func Calculate(in Input) (Result, error) {
	return Compute(in, logging.NewNop())
}

func Compute(in Input, logger *slog.Logger) (Result, error) {
	if len(in.Runs) == 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	b := NewBuilder(in.Options(), logger)

	res := Result{OK: true, Diagnostics: []string{}}
	for _, p := range in.Runs {
		step := b.Add(p)
		res.Runs = append(res.Runs, runResult(step))
		if !step.Run.IsValid() {
			res.OK = false
		}
		if step.Landing != nil {
			res.Landings = append(res.Landings, landingResult(step))
		}
		if len(step.Diagnostics) > 0 {
			res.OK = false
			res.Diagnostics = append(res.Diagnostics, step.Diagnostics...)
		}
	}
	res.Notes = "Stair runs and landings checked against riser, tread and slope limits."
	return res, nil
}

func runResult(step Step) RunResult {
	r := step.Run
	out := RunResult{
		Start:       r.Start(),
		End:         r.End(),
		NumSteps:    r.NumSteps(),
		RiserMM:     r.RiserDim(),
		TreadMM:     r.TreadDim(),
		Slope:       r.Slope(),
		Valid:       r.IsValid(),
		StepSurface: r.StepSurface(),
		Rails:       r.Rails(),
		Balusters:   r.Balusters(),
	}
	if step.Corrected != nil {
		end := step.Corrected.End()
		out.CorrectedEnd = &end
	}
	return out
}

func landingResult(step Step) LandingResult {
	l := step.Landing
	out := LandingResult{
		BottomRun:    step.Index - 1,
		TopRun:       step.Index,
		TurnAngleDeg: l.TurnAngle() * 180 / math.Pi,
		NearestSide:  l.NearestSide(),
		Valid:        l.IsValid(),
	}
	s, err := l.Surface()
	switch {
	case errors.Is(err, ErrInvalidLanding):
		out.Error = MsgAmbiguousLanding
	case err != nil:
		out.Error = MsgLandingFailed
	default:
		out.Surface = &s
		out.AreaMM2 = s.Face.Area
		out.Railings = step.Railings
	}
	return out
}
