package stairs

import (
	"errors"
	"fmt"
	"math"

	"Stairwell/internal/geom"
)

// Diagnostic messages surfaced to the user when landing geometry is skipped.
const (
	MsgAmbiguousLanding = "The relationship between the runs is ambiguous, creation of landing will be skipped."
	MsgLandingFailed    = "Landing creation failed."
)

var (
	ErrInvalidLanding = errors.New("landing: ambiguous relationship between runs")
	ErrNoSurface      = errors.New("landing: surface could not be built")
)

// NearSide names which pair of corresponding edge ends lies closer together.
type NearSide int

const (
	From NearSide = iota
	To
)

func (s NearSide) String() string {
	if s == To {
		return "to"
	}
	return "from"
}

func (s NearSide) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *NearSide) UnmarshalText(b []byte) error {
	switch string(b) {
	case "from":
		*s = From
	case "to":
		*s = To
	default:
		return fmt.Errorf("unknown near side %q", b)
	}
	return nil
}

// SurfaceCase identifies which construction built a landing surface.
type SurfaceCase int

const (
	CaseStraight SurfaceCase = iota // parallel runs
	CaseTurn                        // 0 < turn <= π/2
	CaseSwitchback                  // turn > π/2
)

func (c SurfaceCase) String() string {
	switch c {
	case CaseTurn:
		return "turn"
	case CaseSwitchback:
		return "switchback"
	}
	return "straight"
}

func (c SurfaceCase) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *SurfaceCase) UnmarshalText(b []byte) error {
	for _, v := range []SurfaceCase{CaseStraight, CaseTurn, CaseSwitchback} {
		if v.String() == string(b) {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown surface case %q", b)
}

// Surface is a successfully built landing: the boundary face and the two
// curves along which the railing stands.
type Surface struct {
	Case          SurfaceCase        `json:"case"`
	Face          geom.PlanarSurface `json:"face"`
	RightRailEdge geom.Polyline      `json:"right_rail_edge"`
	LeftRailEdge  geom.Polyline      `json:"left_rail_edge"`
}

// Landing joins the top of bottom to the foot of top. Validity and the surface
// are computed once by NewLanding; a Landing never changes afterwards.
type Landing struct {
	bottom, top Run

	valid   bool
	surface Surface
	err     error
}

// NewLanding must be called only with finalised runs.
func NewLanding(bottom, top Run) *Landing {
	l := &Landing{bottom: bottom, top: top}

	be, te := l.BottomEdge(), l.TopEdge()
	var tb, tt geom.Vec3
	if l.NearestSide() == From {
		tb = be.To.Sub(be.From)
		tt = te.To.Sub(te.From)
	} else {
		tb = be.From.Sub(be.To)
		tt = te.From.Sub(te.To)
	}
	l.valid = l.validate(tb, tt)

	if !l.valid {
		l.err = ErrInvalidLanding
		return l
	}
	l.surface, l.err = l.build()
	if l.err != nil {
		l.err = fmt.Errorf("%w: %s: %w", ErrNoSurface, l.Case(), l.err)
	}
	return l
}

func (l *Landing) BottomRun() Run { return l.bottom }
func (l *Landing) TopRun() Run    { return l.top }

// TurnAngle is the plan angle between the two runs, in [0, π].
func (l *Landing) TurnAngle() float64 {
	return l.bottom.RunDirection().Angle(l.top.RunDirection())
}

// Case is the surface construction selected by the turn angle.
func (l *Landing) Case() SurfaceCase {
	switch a := l.TurnAngle(); {
	case a == 0:
		return CaseStraight
	case a <= math.Pi/2:
		return CaseTurn
	}
	return CaseSwitchback
}

// BottomEdge is the top edge of the bottom run.
func (l *Landing) BottomEdge() geom.Line { return l.bottom.TopEdge() }

// TopEdge is the bottom edge of the top run.
func (l *Landing) TopEdge() geom.Line { return l.top.BottomEdge() }

// NearestSide resolves ties to From.
func (l *Landing) NearestSide() NearSide {
	be, te := l.BottomEdge(), l.TopEdge()
	if be.From.DistanceTo(te.From) > be.To.DistanceTo(te.To) {
		return To
	}
	return From
}

func (l *Landing) NearEdge() geom.Line {
	be, te := l.BottomEdge(), l.TopEdge()
	if l.NearestSide() == From {
		return geom.NewLine(be.From, te.From)
	}
	return geom.NewLine(be.To, te.To)
}

// FarEdge joins the corresponding ends opposite the near edge.
func (l *Landing) FarEdge() geom.Line {
	be, te := l.BottomEdge(), l.TopEdge()
	if l.NearestSide() == From {
		return geom.NewLine(be.To, te.To)
	}
	return geom.NewLine(be.From, te.From)
}

func (l *Landing) IsValid() bool { return l.valid }

// Surface returns the built landing, or an error wrapping ErrInvalidLanding or
// ErrNoSurface. On error nothing should be rendered.
func (l *Landing) Surface() (Surface, error) {
	if l.err != nil {
		return Surface{}, l.err
	}
	return l.surface, nil
}

// validate rejects landings that are sloped, approached at an acute angle to
// the near edge, or turn far enough to fold over themselves. tb and tt are the
// tread vectors of each run oriented away from the near side.
func (l *Landing) validate(tb, tt geom.Vec3) bool {
	if l.TurnAngle() == 0 {
		join := l.top.start.Sub(l.bottom.end)
		return l.bottom.RunDirection().Dot(join) > 0
	}

	be, te := l.BottomEdge(), l.TopEdge()
	if be.From.Z != te.From.Z || be.To.Z != te.To.Z {
		return false
	}

	near := l.NearEdge()
	nvb := near.To.Sub(near.From)
	nvt := near.From.Sub(near.To)

	if nvb.Angle(tb) < math.Pi/2 || nvt.Angle(tt) < math.Pi/2 {
		return false
	}

	theta1 := SpecialAngle(tb, nvb, l.bottom.RunDirection())
	theta2 := SpecialAngle(tt, nvt, l.top.RunDirection().Neg())
	return theta1+theta2 <= 2*math.Pi
}

// SpecialAngle measures the angle from tread to near, going the long way
// round through runDir when runDir points away from near.
func SpecialAngle(tread, near, runDir geom.Vec3) float64 {
	if a0 := runDir.Angle(near); a0 > math.Pi/2 {
		return a0 + tread.Angle(runDir)
	}
	return tread.Angle(near)
}

func (l *Landing) build() (Surface, error) {
	switch l.Case() {
	case CaseStraight:
		return l.straight()
	case CaseTurn:
		return l.turn()
	}
	return l.switchback()
}
