package stairs

import (
	"fmt"

	"Stairwell/internal/geom"
)

// straight builds the rectangle between two parallel runs. The anchor corner
// is the end of the longer diagonal; on a tie the From corner wins.
func (l *Landing) straight() (Surface, error) {
	be, te := l.BottomEdge(), l.TopEdge()

	var corner geom.Point3
	var xVec, diagonal geom.Vec3
	fromAnchored := be.From.DistanceTo(te.To) >= be.To.DistanceTo(te.From)
	if fromAnchored {
		corner = be.From
		xVec = be.To.Sub(be.From)
		diagonal = te.To.Sub(be.From)
	} else {
		corner = be.To
		xVec = be.From.Sub(be.To)
		diagonal = te.From.Sub(be.To)
	}
	xVec = xVec.Unit()
	yVec := l.bottom.RunDirection()

	distX := diagonal.Dot(xVec)
	distY := be.DistanceTo(te.From, false)

	p1 := corner.Add(yVec.Mul(distY))
	p2 := p1.Add(xVec.Mul(distX))
	p3 := p2.Add(yVec.Mul(-distY))

	rail1 := geom.NewPolyline(corner, p1, p1.Add(xVec.Mul(distX-l.top.width)))
	rail2 := geom.NewPolyline(p2, p3, p3.Add(xVec.Mul(-(distX - l.bottom.width))))

	face, err := geom.NewPlanarSurface(geom.NewPolyline(corner, p1, p2, p3, corner))
	if err != nil {
		return Surface{}, err
	}

	s := Surface{Case: CaseStraight, Face: face, RightRailEdge: rail1, LeftRailEdge: rail2}
	if !fromAnchored {
		s.RightRailEdge, s.LeftRailEdge = rail2, rail1
	}
	return s, nil
}

// turn builds the landing for a turn of at most a right angle by extending
// each side edge of both runs until same-side extensions meet.
func (l *Landing) turn() (Surface, error) {
	be, te := l.BottomEdge(), l.TopEdge()
	bd, td := l.bottom.RunDirection(), l.top.RunDirection()

	fromInt, err := geom.IntersectLines(
		geom.NewLine(be.From, be.From.Add(bd)),
		geom.NewLine(te.From, te.From.Add(td.Neg())),
	)
	if err != nil {
		return Surface{}, fmt.Errorf("from side: %w", err)
	}
	toInt, err := geom.IntersectLines(
		geom.NewLine(be.To, be.To.Add(bd)),
		geom.NewLine(te.To, te.To.Add(td.Neg())),
	)
	if err != nil {
		return Surface{}, fmt.Errorf("to side: %w", err)
	}

	loop := geom.NewPolyline(be.From, fromInt, te.From, te.To, toInt, be.To).Close()
	face, err := geom.NewPlanarSurface(loop)
	if err != nil {
		return Surface{}, err
	}
	return Surface{
		Case:          CaseTurn,
		Face:          face,
		RightRailEdge: geom.NewPolyline(be.From, fromInt, te.From),
		LeftRailEdge:  geom.NewPolyline(te.To, toInt, be.To),
	}, nil
}

// midDirection is the bisector of the two run directions. When they cancel
// out it falls back to the near edge tangent projected on the bottom tread,
// and failing that to the near edge tangent itself.
func midDirection(bottomDir, topDir, bottomTread, nearTangent geom.Vec3) geom.Vec3 {
	m := bottomDir.Add(topDir)
	if m.Length() == 0 {
		m = bottomTread.Mul(bottomTread.Dot(nearTangent))
	}
	if m.Length() == 0 {
		m = nearTangent
	}
	return m.Unit()
}

// switchback builds the landing for a turn sharper than a right angle. The
// inside corners hug the near edge; the outside boundary is offset by the
// bottom run's width.
func (l *Landing) switchback() (Surface, error) {
	be, te := l.BottomEdge(), l.TopEdge()
	bd, td := l.bottom.RunDirection(), l.top.RunDirection()
	tangent := l.NearEdge().UnitTangent()
	side := l.NearestSide()

	vecMid := midDirection(bd, td, l.bottom.TreadDirection(), tangent)
	offsetDir := bd.Sub(td).Unit()

	var vec1, vec2 geom.Vec3
	var inner1, inner2, outer1, outer2 geom.Point3
	if tangent.Dot(bd) >= 0 {
		vec1, vec2 = td.Neg(), bd
		vecMid = vecMid.Neg()
		if side == From {
			inner1, outer1, inner2, outer2 = te.From, te.To, be.From, be.To
		} else {
			inner1, outer1, inner2, outer2 = te.To, te.From, be.To, be.From
		}
	} else {
		vec1, vec2 = bd, td.Neg()
		if side == From {
			inner1, outer1, inner2, outer2 = be.From, be.To, te.From, te.To
		} else {
			inner1, outer1, inner2, outer2 = be.To, be.From, te.To, te.From
		}
	}
	outerMid := inner1.Add(offsetDir.Mul(l.bottom.width))

	p1, err := geom.IntersectLines(
		geom.NewLine(inner1, inner1.Add(vecMid)),
		geom.NewLine(inner2, inner2.Add(vec2)),
	)
	if err != nil {
		return Surface{}, fmt.Errorf("inner corner: %w", err)
	}
	p2, err := geom.IntersectLines(
		geom.NewLine(outer2, outer2.Add(vec2)),
		geom.NewLine(outerMid, outerMid.Add(vecMid)),
	)
	if err != nil {
		return Surface{}, fmt.Errorf("outer corner: %w", err)
	}
	p3, err := geom.IntersectLines(
		geom.NewLine(outerMid, outerMid.Add(vecMid.Neg())),
		geom.NewLine(outer1, outer1.Add(vec1)),
	)
	if err != nil {
		return Surface{}, fmt.Errorf("outer return: %w", err)
	}

	loop := geom.NewPolyline(inner1, p1, inner2, outer2, p2, p3, outer1).Close()
	face, err := geom.NewPlanarSurface(loop)
	if err != nil {
		return Surface{}, err
	}

	inner := geom.NewPolyline(inner1, p1, inner2)
	outer := geom.NewPolyline(outer2, p2, p3, outer1)
	s := Surface{Case: CaseSwitchback, Face: face, RightRailEdge: inner, LeftRailEdge: outer}
	if side == To {
		s.RightRailEdge, s.LeftRailEdge = outer, inner
	}
	return s, nil
}
