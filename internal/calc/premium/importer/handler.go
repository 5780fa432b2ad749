package importer

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/logging"
)

const MaxUploadSize = 10 << 20

type Handler struct {
	Logger   *slog.Logger
	Observer stairs.Observer
}

type ImportResult struct {
	Count   int           `json:"count"`
	Skipped int           `json:"skipped"`
	Input   stairs.Input  `json:"input"`
	Result  stairs.Result `json:"result"`
}

// Import computes a flight from an uploaded workbook ("file"). Optional form
// fields width_mm and rail_height_mm override the defaults.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	picks, skipped, err := Parse(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	in := stairs.Input{Runs: picks}
	if v := r.FormValue("width_mm"); v != "" {
		if in.WidthMM, err = toFloat(v); err != nil {
			http.Error(w, "Invalid width_mm", http.StatusBadRequest)
			return
		}
	}
	if v := r.FormValue("rail_height_mm"); v != "" {
		if in.RailHeightMM, err = toFloat(v); err != nil {
			http.Error(w, "Invalid rail_height_mm", http.StatusBadRequest)
			return
		}
	}

	logger := h.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	res, err := stairs.Compute(in, logger)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	if h.Observer != nil {
		h.Observer.ObserveFlight(res)
	}
	logger.Info("flight imported", "runs", len(picks), "skipped", skipped)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(picks), Skipped: skipped, Input: in, Result: res})
}
