package recommend

import (
	"fmt"
	"strings"

	"Stairwell/internal/calc/stairs"
)

type Input struct {
	WidthMM      float64 `json:"width_mm"`
	RailHeightMM float64 `json:"rail_height_mm"`
	RiseMM       float64 `json:"rise_mm"`
}

type Result struct {
	WidthMM      float64 `json:"width_mm"`
	RailHeightMM float64 `json:"rail_height_mm"`
	MinRunMM     float64 `json:"min_run_mm"`
	MaxRunMM     float64 `json:"max_run_mm"`
	MinSteps     int     `json:"min_steps"`
	Notes        string  `json:"notes"`
}

// Options clamps the requested width and rail height to the code limits and
// gives the plan length range that keeps a run of the given rise compliant.
func Options(in Input) (Result, error) {
	if in.RiseMM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	o := stairs.Options{Width: in.WidthMM, RailHeight: in.RailHeightMM}.Clamp()

	res := Result{
		WidthMM:      o.Width,
		RailHeightMM: o.RailHeight,
		MinRunMM:     in.RiseMM * stairs.MinTread / stairs.MaxRiser,
		MaxRunMM:     in.RiseMM * stairs.MaxTread / stairs.MinRiser,
	}
	res.MinSteps = max(int(res.MinRunMM/stairs.MinTread), 1)

	var notes []string
	if o.Width != in.WidthMM {
		notes = append(notes, fmt.Sprintf("width set to %g", o.Width))
	}
	if o.RailHeight != in.RailHeightMM {
		notes = append(notes, fmt.Sprintf("rail height set to %g", o.RailHeight))
	}
	if len(notes) == 0 {
		res.Notes = "Requested dimensions are within code limits."
	} else {
		res.Notes = strings.Join(notes, "; ") + "."
	}
	return res, nil
}
