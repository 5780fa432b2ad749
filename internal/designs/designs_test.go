package designs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairwell/internal/auth"
	"Stairwell/internal/repo"
)

const flight = `{"name":"lobby","flight":{"runs":[
	{"start":{"x":0,"y":0,"z":0},"end":{"x":0,"y":100,"z":0},"height":{"x":0,"y":100,"z":50}},
	{"start":{"x":30,"y":120,"z":0},"end":{"x":120,"y":120,"z":0},"height":{"x":120,"y":120,"z":100}}
]}}`

func router(h *Handler, userID int) http.Handler {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), userID)))
		})
	})
	r.HandleFunc("/designs", h.Save).Methods("POST")
	r.HandleFunc("/designs", h.List).Methods("GET")
	r.HandleFunc("/designs/{id:[0-9]+}", h.Get).Methods("GET")
	r.HandleFunc("/designs/{id:[0-9]+}", h.Delete).Methods("DELETE")
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, bytes.NewBufferString(body)))
	return rec
}

func TestDesigns_Lifecycle(t *testing.T) {
	store := repo.NewMemoryRepository()
	h := &Handler{Repo: store}
	owner := router(h, 1)
	stranger := router(h, 2)

	rec := do(t, owner, http.MethodPost, "/designs", flight)
	require.Equal(t, http.StatusCreated, rec.Code)
	var saved SaveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	path := "/designs/" + strconv.Itoa(saved.ID)

	rec = do(t, owner, http.MethodGet, "/designs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []repo.Design
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "lobby", list[0].Name)

	rec = do(t, owner, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	result := got["result"].(map[string]any)
	assert.Len(t, result["runs"], 2)
	assert.Len(t, result["landings"], 1)

	assert.Equal(t, http.StatusNotFound, do(t, stranger, http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, stranger, http.MethodDelete, path, "").Code)

	assert.Equal(t, http.StatusNoContent, do(t, owner, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, owner, http.MethodGet, path, "").Code)
}

func TestDesigns_RejectsBadInput(t *testing.T) {
	h := router(&Handler{Repo: repo.NewMemoryRepository()}, 1)
	for _, body := range []string{
		"{",
		`{"name":"","flight":{"runs":[]}}`,
		`{"name":"empty","flight":{"runs":[]}}`,
	} {
		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/designs", body).Code, body)
	}
}

func TestDesigns_Unauthorized(t *testing.T) {
	h := &Handler{Repo: repo.NewMemoryRepository()}
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/designs", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
