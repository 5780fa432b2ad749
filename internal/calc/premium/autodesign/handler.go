package autodesign

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/logging"
)

type Handler struct {
	Logger *slog.Logger
}

func (h *Handler) Flight(w http.ResponseWriter, r *http.Request) {
	var input stairs.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	res, err := Flight(input, logger)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
