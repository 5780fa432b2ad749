package batch

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/logging"
)

type Handler struct {
	Logger   *slog.Logger
	Observer stairs.Observer
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	res, err := Calculate(input, logger)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	if h.Observer != nil {
		for _, f := range res.Results {
			h.Observer.ObserveFlight(f)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
