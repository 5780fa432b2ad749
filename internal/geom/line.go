package geom

// Line is a straight segment from From to To. Parameter t maps 0 to From and
// 1 to To; intersection routines treat the segment as an infinite line.
type Line struct {
	From Point3 `json:"from" yaml:"from"`
	To   Point3 `json:"to" yaml:"to"`
}

func NewLine(from, to Point3) Line {
	return Line{From: from, To: to}
}

// Direction is To - From.
func (l Line) Direction() Vec3 {
	return l.To.Sub(l.From)
}

func (l Line) UnitTangent() Vec3 {
	return l.Direction().Unit()
}

func (l Line) Length() float64 {
	return l.Direction().Length()
}

func (l Line) PointAt(t float64) Point3 {
	return l.From.Add(l.Direction().Mul(t))
}

// Translate moves both endpoints by v.
func (l Line) Translate(v Vec3) Line {
	return Line{From: l.From.Add(v), To: l.To.Add(v)}
}

// ClosestParameter returns t of the point on the infinite line nearest to p.
// A degenerate line returns 0.
func (l Line) ClosestParameter(p Point3) float64 {
	d := l.Direction()
	dd := d.Dot(d)
	if dd == 0 {
		return 0
	}
	return p.Sub(l.From).Dot(d) / dd
}

// DistanceTo returns the distance from p to the line. With limited set the
// closest point is clamped to the segment.
func (l Line) DistanceTo(p Point3, limited bool) float64 {
	t := l.ClosestParameter(p)
	if limited {
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return l.PointAt(t).DistanceTo(p)
}
