package geom

import (
	"errors"
	"math"
)

var ErrDegenerateLoop = errors.New("boundary loop is degenerate")

// PlanarSurface is a flat face bounded by a single closed loop.
type PlanarSurface struct {
	Boundary Polyline `json:"boundary"`
	Normal   Vec3     `json:"normal"`
	Area     float64  `json:"area"`
}

// NewPlanarSurface builds a face from a closed point loop. The loop must have
// at least three distinct corners, enclose a non-zero area and lie in one
// plane within Tolerance.
func NewPlanarSurface(loop Polyline) (PlanarSurface, error) {
	if !loop.IsClosed() || len(loop) < 4 {
		return PlanarSurface{}, ErrDegenerateLoop
	}

	// Newell's method; the length of n is twice the enclosed area.
	var n Vec3
	for i := 0; i < len(loop)-1; i++ {
		p, q := loop[i], loop[i+1]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	area := n.Length() / 2
	if area <= Tolerance {
		return PlanarSurface{}, ErrDegenerateLoop
	}
	normal := n.Unit()

	origin := loop[0]
	for _, p := range loop[1:] {
		if math.Abs(p.Sub(origin).Dot(normal)) > Tolerance {
			return PlanarSurface{}, ErrDegenerateLoop
		}
	}

	return PlanarSurface{Boundary: loop, Normal: normal, Area: area}, nil
}

// Extrusion sweeps an open profile along a straight direction.
type Extrusion struct {
	Profile   Polyline `json:"profile"`
	Direction Vec3     `json:"direction"`
}

func NewExtrusion(profile Polyline, dir Vec3) Extrusion {
	return Extrusion{Profile: profile, Direction: dir}
}

// Faces returns one quad per profile span: the span, then the span swept.
func (e Extrusion) Faces() [][4]Point3 {
	faces := make([][4]Point3, 0, len(e.Profile))
	for _, s := range e.Profile.Segments() {
		faces = append(faces, [4]Point3{
			s.From,
			s.To,
			s.To.Add(e.Direction),
			s.From.Add(e.Direction),
		})
	}
	return faces
}

func (e Extrusion) Area() float64 {
	var a float64
	for _, s := range e.Profile.Segments() {
		a += s.Direction().Cross(e.Direction).Length()
	}
	return a
}
