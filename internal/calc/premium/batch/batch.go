package batch

import (
	"fmt"
	"log/slog"

	"Stairwell/internal/calc/stairs"
)

type Input struct {
	Flights []stairs.Input `json:"flights"`
}

type Result struct {
	Results []stairs.Result `json:"results"`
	OK      bool            `json:"ok"`
}

// Calculate computes every flight. The batch fails on the first flight that
// cannot be computed.
func Calculate(in Input, logger *slog.Logger) (Result, error) {
	if len(in.Flights) == 0 {
		return Result{}, fmt.Errorf("no flights")
	}
	out := Result{Results: make([]stairs.Result, 0, len(in.Flights)), OK: true}
	for i, f := range in.Flights {
		res, err := stairs.Compute(f, logger.With("flight", i))
		if err != nil {
			return Result{}, fmt.Errorf("flight %d: %w", i, err)
		}
		out.OK = out.OK && res.OK
		out.Results = append(out.Results, res)
	}
	return out, nil
}
