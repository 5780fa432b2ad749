package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), ZAxis, V3(1, 0, 0)},
		{"parallel", V3(2, 0, 0), V3(5, 0, 0), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.v.Cross(tt.w).Approx(tt.expect, 1e-12), "%v x %v", tt.v, tt.w)
		})
	}
}

func TestVec3_UnitOfZero(t *testing.T) {
	assert.True(t, Vec3{}.Unit().IsZero())
	assert.InDelta(t, 1.0, V3(3, 4, 12).Unit().Length(), 1e-12)
}

func TestVec3_Angle(t *testing.T) {
	assert.Equal(t, 0.0, YAxis.Angle(YAxis))
	assert.Equal(t, math.Pi/2, YAxis.Angle(V3(1, 0, 0)))
	assert.Equal(t, math.Pi, YAxis.Angle(YAxis.Neg()))
	assert.Equal(t, 0.0, Vec3{}.Angle(YAxis))
}

func TestLine_DistanceTo(t *testing.T) {
	l := NewLine(Pt(0, 0, 0), Pt(10, 0, 0))
	assert.InDelta(t, 5.0, l.DistanceTo(Pt(20, 5, 0), false), 1e-12)
	assert.InDelta(t, math.Hypot(10, 5), l.DistanceTo(Pt(20, 5, 0), true), 1e-12)
}

func TestIntersectLines_Crossing(t *testing.T) {
	a := NewLine(Pt(0, 0, 0), Pt(1, 0, 0))
	b := NewLine(Pt(5, -1, 1e-6), Pt(5, 1, 1e-6))

	p, err := IntersectLines(a, b)
	require.NoError(t, err)
	assert.True(t, p.Approx(Pt(5, 0, 0), 1e-9), "got %v", p)
}

func TestIntersectLines_Skew(t *testing.T) {
	a := NewLine(Pt(0, 0, 0), Pt(1, 0, 0))
	b := NewLine(Pt(5, -1, 0.01), Pt(5, 1, 0.01))

	_, err := IntersectLines(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoIntersection))
	assert.False(t, errors.Is(err, ErrParallel))
}

func TestIntersectLines_Parallel(t *testing.T) {
	a := NewLine(Pt(0, 0, 0), Pt(1, 0, 0))
	b := NewLine(Pt(0, 1, 0), Pt(3, 1, 0))

	_, err := IntersectLines(a, b)
	assert.ErrorIs(t, err, ErrNoIntersection)
	assert.ErrorIs(t, err, ErrParallel)
}

func TestNewPolyline_CollapsesDuplicates(t *testing.T) {
	pl := NewPolyline(Pt(0, 0, 0), Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 0, 1e-7), Pt(1, 1, 0))
	assert.Len(t, pl, 3)
	assert.InDelta(t, 2.0, pl.Length(), 1e-12)
}

func TestPolyline_DivideByCount(t *testing.T) {
	pl := NewPolyline(Pt(0, 0, 0), Pt(40, 0, 0), Pt(40, 80, 0))
	pts := pl.DivideByCount(10)

	require.Len(t, pts, 11)
	assert.Equal(t, pl[0], pts[0])
	assert.Equal(t, pl[2], pts[10])
	assert.True(t, pts[3].Approx(Pt(36, 0, 0), 1e-9), "got %v", pts[3])
	assert.True(t, pts[4].Approx(Pt(40, 8, 0), 1e-9), "got %v", pts[4])
}

func TestPolyline_Close(t *testing.T) {
	pl := NewPolyline(Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0))
	closed := pl.Close()
	assert.Len(t, pl, 3)
	assert.Len(t, closed, 4)
	assert.True(t, closed.IsClosed())
	assert.Len(t, closed.Close(), 4)
}

func TestNewPlanarSurface(t *testing.T) {
	loop := NewPolyline(Pt(0, 0, 5), Pt(40, 0, 5), Pt(40, 50, 5), Pt(0, 50, 5)).Close()

	s, err := NewPlanarSurface(loop)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, s.Area, 1e-9)
	assert.InDelta(t, 1.0, math.Abs(s.Normal.Z), 1e-12)
}

func TestNewPlanarSurface_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		loop Polyline
	}{
		{"open", NewPolyline(Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0))},
		{"collinear", NewPolyline(Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0)).Close()},
		{"non planar", NewPolyline(Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 1), Pt(0, 1, 0)).Close()},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlanarSurface(tt.loop)
			assert.ErrorIs(t, err, ErrDegenerateLoop)
		})
	}
}

func TestExtrusion(t *testing.T) {
	e := NewExtrusion(NewPolyline(Pt(0, 0, 0), Pt(0, 0, 6), Pt(0, 12, 6)), V3(40, 0, 0))
	assert.Len(t, e.Faces(), 2)
	assert.InDelta(t, 18*40.0, e.Area(), 1e-9)
}
