package schedule

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/logging"
)

const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Logger *slog.Logger
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input stairs.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	res, err := stairs.Compute(input, logger)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, res); err != nil {
		logger.Error("render schedule", "err", err)
		http.Error(w, "Schedule generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"stairs-schedule.xlsx\"")
	w.Write(buf.Bytes())
}
