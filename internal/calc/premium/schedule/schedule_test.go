package schedule

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/geom"
)

func TestBuild(t *testing.T) {
	res, err := stairs.Calculate(stairs.Input{Runs: []stairs.Pick{
		{Start: geom.Pt(0, 0, 0), End: geom.Pt(0, 100, 0), Height: geom.Pt(0, 100, 50)},
		{Start: geom.Pt(30, 120, 0), End: geom.Pt(120, 120, 0), Height: geom.Pt(120, 120, 100)},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{RunsSheet, LandingsSheet}, f.GetSheetList())

	runs, err := f.GetRows(RunsSheet)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "steps", runs[0][7])
	assert.Equal(t, "9", runs[1][7])
	assert.Equal(t, "TRUE", runs[1][11])

	landings, err := f.GetRows(LandingsSheet)
	require.NoError(t, err)
	require.Len(t, landings, 2)
	assert.Equal(t, "turn", landings[1][3])
	assert.Equal(t, "ok", landings[1][8])
}

func TestHandler_Export(t *testing.T) {
	body := `{"runs":[{"start":{"x":0,"y":0,"z":0},"end":{"x":0,"y":100,"z":0},"height":{"x":0,"y":100,"z":50}}]}`
	rec := httptest.NewRecorder()
	(&Handler{}).Export(rec, httptest.NewRequest(http.MethodPost, "/tools/stairs/schedule", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentType, rec.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(LandingsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
