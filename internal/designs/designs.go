package designs

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"Stairwell/internal/auth"
	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/logging"
	"Stairwell/internal/repo"
)

type Handler struct {
	Repo   repo.Repository
	Logger *slog.Logger
}

type SaveRequest struct {
	Name   string       `json:"name"`
	Flight stairs.Input `json:"flight"`
}

type SaveResponse struct {
	ID int `json:"id"`
}

// DesignResponse is a stored design together with its recomputed flight.
type DesignResponse struct {
	repo.Design
	Result stairs.Result `json:"result"`
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return logging.NewNop()
	}
	return h.Logger
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}
	if _, err := stairs.Calculate(req.Flight); err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	flight, err := json.Marshal(req.Flight)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveDesign(r.Context(), repo.Design{UserID: userID, Name: req.Name, Flight: flight})
	if err != nil {
		h.logger().Error("save design", "user_id", userID, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	list, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		h.logger().Error("list designs", "user_id", userID, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []repo.Design{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}
	d, err := h.Repo.GetDesign(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger().Error("get design", "user_id", userID, "id", id, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	var in stairs.Input
	if err := json.Unmarshal(d.Flight, &in); err != nil {
		http.Error(w, "Stored design is corrupt", http.StatusInternalServerError)
		return
	}
	res, err := stairs.Compute(in, h.logger())
	if err != nil {
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DesignResponse{Design: d, Result: res})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}
	err := h.Repo.DeleteDesign(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger().Error("delete design", "user_id", userID, "id", id, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request) (userID, id int, ok bool) {
	userID, ok = auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, 0, false
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, 0, false
	}
	return userID, id, true
}
