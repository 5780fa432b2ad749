package report

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/logging"
)

type Input struct {
	Meta
	Flight stairs.Input `json:"flight"`
}

type Handler struct {
	Logger *slog.Logger
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	res, err := stairs.Compute(input.Flight, logger)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, input.Meta, res); err != nil {
		logger.Error("render report", "err", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stairs-report.pdf\"")
	w.Write(buf.Bytes())
}
