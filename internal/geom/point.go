package geom

import "math"

// Point3 is a position in model space. Lengths are in the externally fixed
// linear unit (millimeters by convention) and are never converted.
type Point3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func Pt(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add moves p by v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

func (p Point3) DistanceTo(q Point3) float64 {
	return p.Sub(q).Length()
}

// WithZ returns p projected onto the horizontal plane at height z.
func (p Point3) WithZ(z float64) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: z}
}

func (p Point3) Approx(q Point3, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps && math.Abs(p.Z-q.Z) < eps
}
