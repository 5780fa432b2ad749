package geom

// Polyline is a degree-1 curve through an ordered list of points.
type Polyline []Point3

// NewPolyline interpolates pts with no smoothing. Consecutive points closer
// than Tolerance collapse into one.
func NewPolyline(pts ...Point3) Polyline {
	pl := make(Polyline, 0, len(pts))
	for _, p := range pts {
		if n := len(pl); n > 0 && pl[n-1].Approx(p, Tolerance) {
			continue
		}
		pl = append(pl, p)
	}
	return pl
}

func (pl Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(pl); i++ {
		l += pl[i].DistanceTo(pl[i-1])
	}
	return l
}

// Segments returns the straight spans of the polyline.
func (pl Polyline) Segments() []Line {
	if len(pl) < 2 {
		return nil
	}
	out := make([]Line, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		out = append(out, NewLine(pl[i-1], pl[i]))
	}
	return out
}

func (pl Polyline) IsClosed() bool {
	return len(pl) > 2 && pl[0].Approx(pl[len(pl)-1], Tolerance)
}

// Close returns the polyline with its first point repeated at the end.
func (pl Polyline) Close() Polyline {
	if len(pl) == 0 || pl.IsClosed() {
		return pl
	}
	out := make(Polyline, len(pl), len(pl)+1)
	copy(out, pl)
	return append(out, pl[0])
}

func (pl Polyline) Translate(v Vec3) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = p.Add(v)
	}
	return out
}

// DivideByCount splits the polyline into n spans of equal arc length and
// returns the n+1 division points, both ends included.
func (pl Polyline) DivideByCount(n int) []Point3 {
	if len(pl) == 0 || n < 1 {
		return nil
	}
	if len(pl) == 1 {
		out := make([]Point3, n+1)
		for i := range out {
			out[i] = pl[0]
		}
		return out
	}

	total := pl.Length()
	step := total / float64(n)
	out := make([]Point3, 0, n+1)
	out = append(out, pl[0])

	seg := 1
	walked := 0.0 // arc length at pl[seg-1]
	for k := 1; k < n; k++ {
		target := step * float64(k)
		for seg < len(pl)-1 && walked+pl[seg].DistanceTo(pl[seg-1]) < target {
			walked += pl[seg].DistanceTo(pl[seg-1])
			seg++
		}
		span := NewLine(pl[seg-1], pl[seg])
		sl := span.Length()
		if sl == 0 {
			out = append(out, span.From)
			continue
		}
		out = append(out, span.PointAt((target-walked)/sl))
	}
	return append(out, pl[len(pl)-1])
}
