package stairs

import (
	"math"

	"Stairwell/internal/geom"
)

// Railings returns, for each requested side (left first), one baluster per
// division point of the rail edge followed by the rail itself. Balusters are
// spaced at roughly the bottom run's tread depth.
func (l *Landing) Railings(includeLeft, includeRight bool) ([]geom.Polyline, error) {
	s, err := l.Surface()
	if err != nil {
		return nil, err
	}
	spacing := l.bottom.TreadDim()
	height := l.bottom.railHeight

	var out []geom.Polyline
	if includeLeft {
		out = append(out, railing(s.LeftRailEdge, spacing, height)...)
	}
	if includeRight {
		out = append(out, railing(s.RightRailEdge, spacing, height)...)
	}
	return out, nil
}

// railing divides edge into max(floor(length/spacing), 1) spans and stands a
// baluster on each of the num+1 division points; the last curve is the edge
// raised by height.
func railing(edge geom.Polyline, spacing, height float64) []geom.Polyline {
	if len(edge) == 0 {
		return nil
	}
	num := max(int(math.Floor(edge.Length()/spacing)), 1)
	up := geom.ZAxis.Mul(height)

	pts := edge.DivideByCount(num)
	out := make([]geom.Polyline, 0, len(pts)+1)
	for _, p := range pts {
		out = append(out, geom.Polyline{p, p.Add(up)})
	}
	return append(out, edge.Translate(up))
}
