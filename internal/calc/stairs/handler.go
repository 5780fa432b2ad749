package stairs

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Stairwell/internal/geom"
	"Stairwell/internal/logging"
)

// Observer is told about every computed flight.
type Observer interface {
	ObserveFlight(Result)
}

type Handler struct {
	Logger   *slog.Logger
	Observer Observer
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return logging.NewNop()
	}
	return h.Logger
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Compute(input, h.logger())
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	if h.Observer != nil {
		h.Observer.ObserveFlight(res)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type PreviewResult struct {
	Runs     [][]geom.Line   `json:"runs"`
	Landings []geom.Polyline `json:"landings"`
}

// Preview returns the flat outline of each run and the boundary of each valid
// landing, for clients that redraw while points are being picked.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Runs) == 0 {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	b := NewBuilder(input.Options(), h.logger())
	out := PreviewResult{Runs: [][]geom.Line{}, Landings: []geom.Polyline{}}
	for _, p := range input.Runs {
		step := b.Add(p)
		out.Runs = append(out.Runs, step.Run.FlatLines())
		if step.Landing == nil {
			continue
		}
		if s, err := step.Landing.Surface(); err == nil {
			out.Landings = append(out.Landings, s.Face.Boundary)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
