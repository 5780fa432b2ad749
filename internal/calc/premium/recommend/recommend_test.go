package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairwell/internal/calc/stairs"
)

func TestOptions(t *testing.T) {
	res, err := Options(Input{WidthMM: 1000, RailHeightMM: 40, RiseMM: 80})
	require.NoError(t, err)
	assert.Equal(t, stairs.MaxWidth, res.WidthMM)
	assert.Equal(t, 40.0, res.RailHeightMM)
	assert.InDelta(t, 110.0, res.MinRunMM, 1e-9)
	assert.InDelta(t, 1200.0, res.MaxRunMM, 1e-9)
	assert.Equal(t, 10, res.MinSteps)
	assert.Equal(t, "width set to 400.", res.Notes)
}

func TestOptions_Defaults(t *testing.T) {
	res, err := Options(Input{RiseMM: 6})
	require.NoError(t, err)
	assert.Equal(t, stairs.DefaultWidth, res.WidthMM)
	assert.Equal(t, stairs.DefaultRailHeight, res.RailHeightMM)
	assert.Equal(t, 1, res.MinSteps)

	_, err = Options(Input{WidthMM: 40})
	assert.Error(t, err)
}
