package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairwell/internal/auth"
	"Stairwell/internal/config"
	"Stairwell/internal/logging"
	"Stairwell/internal/repo"
)

const flight = `{"runs":[
	{"start":{"x":0,"y":0,"z":0},"end":{"x":0,"y":100,"z":0},"height":{"x":0,"y":100,"z":50}},
	{"start":{"x":30,"y":120,"z":0},"end":{"x":120,"y":120,"z":0},"height":{"x":120,"y":120,"z":100}}]}`

func newServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{TokenKey: []byte("test-key"), RateLimit: 100, RateBurst: 100}
	r := mux.NewRouter()
	HandleList(r, cfg, repo.NewMemoryRepository(), logging.NewNop())
	return CORS(r)
}

func send(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Flow(t *testing.T) {
	h := newServer(t)

	rec := send(h, http.MethodPost, "/api/register", "", `{"login":"ivan","email":"ivan@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var tok auth.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))

	assert.Equal(t, http.StatusUnauthorized, send(h, http.MethodPost, "/api/user/tools/stairs/calc", "", flight).Code)

	rec = send(h, http.MethodPost, "/api/user/tools/stairs/calc", tok.Token, flight)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = send(h, http.MethodPost, "/api/user/designs", tok.Token, `{"name":"lobby","flight":`+flight+`}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = send(h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stairs_runs_total{valid="true"} 2`)
	assert.Contains(t, rec.Body.String(), `stairs_landings_total{outcome="surface"} 1`)
}

func TestCORS_Preflight(t *testing.T) {
	rec := send(newServer(t), http.MethodOptions, "/api/login", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
