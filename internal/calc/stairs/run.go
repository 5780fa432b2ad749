package stairs

import (
	"math"

	"Stairwell/internal/geom"
)

// Run is one straight flight between a start and an end point. A Run is
// immutable; every derived quantity is a pure function of its fields, so
// repeated queries return identical results.
type Run struct {
	start, end geom.Point3
	width      float64
	railHeight float64
	leftRail   bool
	rightRail  bool
}

// NewRun builds a flight from start to end. An end point whose plan distance
// from start is below MinTread is pushed out along its plan direction until
// the plan span is exactly MinTread; the vertical extent is kept. A purely
// vertical pick has no plan direction and is pushed along +Y.
func NewRun(start, end geom.Point3, opts Options) Run {
	d := end.Sub(start)
	if hd := d.Horizontal().Length(); hd < MinTread {
		if hd == 0 {
			d = geom.YAxis.Mul(MinTread).Add(geom.V3(0, 0, d.Z))
		} else {
			d = d.Horizontal().Mul(MinTread / hd).Add(geom.V3(0, 0, d.Z))
		}
		end = start.Add(d)
	}
	return Run{
		start:      start,
		end:        end,
		width:      opts.Width,
		railHeight: opts.RailHeight,
		leftRail:   opts.LeftRail,
		rightRail:  opts.RightRail,
	}
}

func (r Run) Start() geom.Point3  { return r.start }
func (r Run) End() geom.Point3    { return r.end }
func (r Run) Width() float64      { return r.width }
func (r Run) RailHeight() float64 { return r.railHeight }
func (r Run) LeftRail() bool      { return r.leftRail }
func (r Run) RightRail() bool     { return r.rightRail }

// Options returns the configuration the run was built with. Landing is not
// a property of a run and is reported as false.
func (r Run) Options() Options {
	return Options{Width: r.width, RailHeight: r.railHeight, LeftRail: r.leftRail, RightRail: r.rightRail}
}

// StringerDirection is the unit vector along the full slope.
func (r Run) StringerDirection() geom.Vec3 {
	return r.end.Sub(r.start).Unit()
}

// RunDirection is the plan direction of travel.
func (r Run) RunDirection() geom.Vec3 {
	return r.end.Sub(r.start).Horizontal().Unit()
}

// TreadDirection is horizontal, perpendicular to the stringer, and points to
// the climber's right.
func (r Run) TreadDirection() geom.Vec3 {
	return r.StringerDirection().Cross(geom.ZAxis).Unit()
}

// RiserDirection is ±Z following ascent or descent. It is the zero vector
// for a flat run.
func (r Run) RiserDirection() geom.Vec3 {
	return geom.V3(0, 0, r.end.Z-r.start.Z).Unit()
}

func (r Run) VerticalDistance() float64 {
	return math.Abs(r.end.Z - r.start.Z)
}

func (r Run) HorizontalDistance() float64 {
	return r.end.Sub(r.start).Horizontal().Length()
}

func (r Run) NumSteps() int {
	return max(int(math.Floor(r.HorizontalDistance()/MinTread)), 1)
}

func (r Run) RiserDim() float64 {
	return r.VerticalDistance() / float64(r.NumSteps())
}

func (r Run) TreadDim() float64 {
	return r.HorizontalDistance() / float64(r.NumSteps())
}

func (r Run) Slope() float64 {
	return r.VerticalDistance() / r.HorizontalDistance()
}

// IsValid reports whether the slope lies within the code limits.
func (r Run) IsValid() bool {
	s := r.Slope()
	return s <= MaxSlope && s >= MinSlope && r.NumSteps() > 0
}

// Edges are the four straight boundaries of the flight at full width. From
// ends sit on the right side, To ends on the left.
type Edges struct {
	Bottom geom.Line `json:"bottom"`
	Top    geom.Line `json:"top"`
	Side1  geom.Line `json:"side1"`
	Side2  geom.Line `json:"side2"`
}

func (r Run) halfWidth() geom.Vec3 {
	return r.TreadDirection().Mul(r.width / 2)
}

func (r Run) BottomEdge() geom.Line {
	hw := r.halfWidth()
	return geom.NewLine(r.start.Add(hw), r.start.Add(hw.Neg()))
}

func (r Run) TopEdge() geom.Line {
	hw := r.halfWidth()
	return geom.NewLine(r.end.Add(hw), r.end.Add(hw.Neg()))
}

func (r Run) Edges() Edges {
	hw := r.halfWidth()
	return Edges{
		Bottom: r.BottomEdge(),
		Top:    r.TopEdge(),
		Side1:  geom.NewLine(r.start.Add(hw), r.end.Add(hw)),
		Side2:  geom.NewLine(r.start.Add(hw.Neg()), r.end.Add(hw.Neg())),
	}
}

// FlatLines is the lightweight outline: the four edges followed by one line
// per step boundary, NumSteps+3 lines in all.
func (r Run) FlatLines() []geom.Line {
	e := r.Edges()
	lines := make([]geom.Line, 0, r.NumSteps()+3)
	lines = append(lines, e.Bottom, e.Top, e.Side1, e.Side2)

	run, tread := r.RunDirection(), r.TreadDim()
	for i := 1; i < r.NumSteps(); i++ {
		lines = append(lines, e.Bottom.Translate(run.Mul(tread*float64(i))))
	}
	return lines
}

// Rails returns the right rail then the left rail, each only if enabled. A
// rail runs from half a riser above the bottom edge end to half a riser above
// the top edge end, raised by the rail height.
func (r Run) Rails() []geom.Line {
	lift := r.RiserDirection().Mul(r.RiserDim() / 2).Add(geom.ZAxis.Mul(r.railHeight))
	bottom, top := r.BottomEdge(), r.TopEdge()

	rails := make([]geom.Line, 0, 2)
	if r.rightRail {
		rails = append(rails, geom.NewLine(bottom.From.Add(lift), top.From.Add(lift)))
	}
	if r.leftRail {
		rails = append(rails, geom.NewLine(bottom.To.Add(lift), top.To.Add(lift)))
	}
	return rails
}

// Balusters stand at the middle of every tread, left before right on each
// step.
func (r Run) Balusters() []geom.Line {
	halfRiser := r.RiserDirection().Mul(r.RiserDim() / 2)
	halfStep := halfRiser.Add(r.RunDirection().Mul(r.TreadDim() / 2))
	bottom := r.BottomEdge()
	right := bottom.From.Add(halfRiser)
	left := bottom.To.Add(halfRiser)
	up := geom.ZAxis.Mul(r.railHeight)

	out := make([]geom.Line, 0, 2*r.NumSteps())
	for i := 0; i < r.NumSteps(); i++ {
		off := halfStep.Mul(float64(2*i + 1))
		if r.leftRail {
			base := left.Add(off)
			out = append(out, geom.NewLine(base, base.Add(up)))
		}
		if r.rightRail {
			base := right.Add(off)
			out = append(out, geom.NewLine(base, base.Add(up)))
		}
	}
	return out
}

// StepProfile is the riser/tread zigzag along the left side of the flight,
// 2*NumSteps+1 points.
func (r Run) StepProfile() []geom.Point3 {
	riser := r.RiserDirection().Mul(r.RiserDim())
	tread := r.RunDirection().Mul(r.TreadDim())

	pts := make([]geom.Point3, 0, 2*r.NumSteps()+1)
	cur := r.start.Add(r.halfWidth().Neg())
	pts = append(pts, cur)
	for i := 0; i < r.NumSteps(); i++ {
		cur = cur.Add(riser)
		pts = append(pts, cur)
		cur = cur.Add(tread)
		pts = append(pts, cur)
	}
	return pts
}

// StepSurface extrudes the step profile across the full width.
func (r Run) StepSurface() geom.Extrusion {
	profile := make(geom.Polyline, 0, 2*r.NumSteps()+1)
	profile = append(profile, r.StepProfile()...)
	return geom.NewExtrusion(profile, r.TreadDirection().Mul(r.width))
}

// CorrectSlope returns a copy of r whose end point is moved vertically so the
// slope sits on the nearest code limit. The plan span is kept. It returns r
// and false when r is already compliant.
func CorrectSlope(r Run) (Run, bool) {
	if r.IsValid() {
		return r, false
	}
	h := r.HorizontalDistance()
	vert := r.VerticalDistance()
	switch s := r.Slope(); {
	case s < MinSlope:
		vert = h * MinSlope
	case s > MaxSlope:
		vert = h * MaxSlope
	}
	dir := r.RiserDirection()
	if dir.IsZero() {
		dir = geom.ZAxis
	}
	plan := r.end.WithZ(r.start.Z)
	return NewRun(r.start, plan.Add(dir.Mul(vert)), r.Options()), true
}
