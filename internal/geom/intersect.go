package geom

import (
	"errors"
	"fmt"
)

// Tolerance is the largest closest-approach distance, in model units, at which
// two lines are still accepted as intersecting. It is absolute and does not
// scale with the geometry.
const Tolerance = 1e-5

// parallelTolerance bounds sin²θ between two directions below which they are
// treated as parallel and have no unique closest approach.
const parallelTolerance = 1e-12

var (
	ErrNoIntersection = errors.New("lines do not intersect")
	ErrParallel       = errors.New("lines are parallel")
)

// ClosestApproach solves for the parameters ta, tb of the mutually closest
// points of the infinite lines through a and b. ok is false for degenerate or
// parallel lines.
func ClosestApproach(a, b Line) (ta, tb float64, ok bool) {
	d1 := a.Direction()
	d2 := b.Direction()
	w := a.From.Sub(b.From)

	aa := d1.Dot(d1)
	bb := d1.Dot(d2)
	cc := d2.Dot(d2)
	if aa == 0 || cc == 0 {
		return 0, 0, false
	}
	denom := aa*cc - bb*bb
	if denom <= parallelTolerance*aa*cc {
		return 0, 0, false
	}
	d := d1.Dot(w)
	e := d2.Dot(w)
	ta = (bb*e - cc*d) / denom
	tb = (aa*e - bb*d) / denom
	return ta, tb, true
}

// IntersectLines returns the point where the infinite lines through a and b
// meet. Lines whose closest points are farther apart than Tolerance, and
// parallel lines, yield an error wrapping ErrNoIntersection.
func IntersectLines(a, b Line) (Point3, error) {
	ta, tb, ok := ClosestApproach(a, b)
	if !ok {
		return Point3{}, fmt.Errorf("%w: %w", ErrNoIntersection, ErrParallel)
	}
	pa := a.PointAt(ta)
	pb := b.PointAt(tb)
	if dist := pa.DistanceTo(pb); dist > Tolerance {
		return Point3{}, fmt.Errorf("%w: closest approach %g", ErrNoIntersection, dist)
	}
	return pa, nil
}
