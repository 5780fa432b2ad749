package stairs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairwell/internal/geom"
	"Stairwell/internal/logging"
)

func firstPick() Pick {
	return Pick{Start: geom.Pt(0, 0, 0), End: geom.Pt(0, 100, 7), Height: geom.Pt(5, 5, 50)}
}

func TestBuilder_ResolveConstraints(t *testing.T) {
	b := NewBuilder(DefaultOptions(), nil)

	start, end, height := b.Resolve(firstPick())
	assert.Equal(t, geom.Pt(0, 0, 0), start)
	assert.Equal(t, geom.Pt(0, 100, 0), end)
	assert.Equal(t, geom.Pt(0, 100, 50), height)

	b.Add(firstPick())
	start, end, height = b.Resolve(Pick{Start: geom.Pt(30, 120, 999), End: geom.Pt(120, 120, 3), Height: geom.Pt(0, 0, 100)})
	assert.Equal(t, geom.Pt(30, 120, 50), start)
	assert.Equal(t, geom.Pt(120, 120, 50), end)
	assert.Equal(t, geom.Pt(120, 120, 100), height)
}

func TestBuilder_AddsLanding(t *testing.T) {
	b := NewBuilder(DefaultOptions(), nil)

	first := b.Add(firstPick())
	assert.Equal(t, 0, first.Index)
	assert.Nil(t, first.Landing)
	assert.Nil(t, first.Corrected)
	assert.Equal(t, geom.Pt(0, 100, 50), first.Run.End())

	second := b.Add(Pick{Start: geom.Pt(30, 120, 0), End: geom.Pt(120, 120, 0), Height: geom.Pt(120, 120, 100)})
	require.NotNil(t, second.Landing)
	assert.True(t, second.Landing.IsValid())
	assert.Equal(t, CaseTurn, second.Landing.Case())
	assert.Empty(t, second.Diagnostics)
	assert.Len(t, second.Railings, 13)
}

func TestBuilder_AmbiguousLandingDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(DefaultOptions(), logging.NewWriter(&buf, slog.LevelInfo))

	b.Add(firstPick())
	step := b.Add(Pick{Start: geom.Pt(0, 50, 0), End: geom.Pt(0, 200, 0), Height: geom.Pt(0, 200, 100)})

	require.NotNil(t, step.Landing)
	assert.False(t, step.Landing.IsValid())
	assert.Equal(t, []string{MsgAmbiguousLanding}, step.Diagnostics)
	assert.Empty(t, step.Railings)
	assert.Contains(t, buf.String(), "ambiguous")
}

func TestBuilder_ShortPickKeepsLevel(t *testing.T) {
	b := NewBuilder(DefaultOptions(), nil)

	first := b.Add(Pick{Start: geom.Pt(0, 0, 0), End: geom.Pt(0, 5, 0), Height: geom.Pt(0, 5, 3)})
	assert.True(t, first.Run.End().Approx(geom.Pt(0, MinTread, 3), 1e-9), "end %v", first.Run.End())

	second := b.Add(Pick{Start: geom.Pt(0, 30, 0), End: geom.Pt(0, 130, 0), Height: geom.Pt(0, 130, 50)})
	assert.Equal(t, 3.0, second.Run.Start().Z)
	require.NotNil(t, second.Landing)
	assert.True(t, second.Landing.IsValid())
	assert.Empty(t, second.Diagnostics)
	_, err := second.Landing.Surface()
	assert.NoError(t, err)
}

func TestBuilder_LandingSwitchedOff(t *testing.T) {
	opts := DefaultOptions()
	opts.Landing = false
	b := NewBuilder(opts, nil)

	b.Add(firstPick())
	step := b.Add(Pick{Start: geom.Pt(30, 120, 0), End: geom.Pt(120, 120, 0), Height: geom.Pt(120, 120, 100)})
	assert.Nil(t, step.Landing)
	assert.Empty(t, step.Diagnostics)
}

func TestBuilder_SetOptionsAppliesToNextRun(t *testing.T) {
	b := NewBuilder(DefaultOptions(), nil)
	first := b.Add(firstPick())

	b.SetOptions(Options{Width: 60, RailHeight: 40, Landing: true})
	second := b.Add(Pick{Start: geom.Pt(40, 130, 0), End: geom.Pt(140, 130, 0), Height: geom.Pt(140, 130, 100)})

	assert.Equal(t, DefaultWidth, first.Run.Width())
	assert.Equal(t, 60.0, second.Run.Width())
	assert.Empty(t, second.Run.Rails())
}

func TestBuilder_CorrectsSteepRun(t *testing.T) {
	b := NewBuilder(DefaultOptions(), nil)
	step := b.Add(Pick{Start: geom.Pt(0, 0, 0), End: geom.Pt(0, 100, 0), Height: geom.Pt(0, 100, 100)})

	require.NotNil(t, step.Corrected)
	assert.False(t, step.Run.IsValid())
	assert.InDelta(t, MaxSlope, step.Corrected.Slope(), 1e-12)
}
