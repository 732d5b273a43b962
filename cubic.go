package pathpos

import "fmt"

// CubicBez is a single cubic Bézier segment of a [Path]. P0 is the start
// point, P1 and P2 are the control points, and P3 is the end point.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// LineCubic returns the cubic Bézier that traces the straight line from p0 to
// p1 at constant speed.
func LineCubic(p0, p1 Point) CubicBez {
	return CubicBez{
		P0: p0,
		P1: p0.Lerp(p1, 1.0/3.0),
		P2: p0.Lerp(p1, 2.0/3.0),
		P3: p1,
	}
}

// QuadCubic returns the cubic Bézier equivalent to the quadratic Bézier with
// start p0, control point p1, and end p2. Degree elevation is exact.
func QuadCubic(p0, p1, p2 Point) CubicBez {
	return CubicBez{
		P0: p0,
		P1: p0.Lerp(p1, 2.0/3.0),
		P2: p2.Lerp(p1, 2.0/3.0),
		P3: p2,
	}
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez(%s, %s, %s, %s)", c.P0, c.P1, c.P2, c.P3)
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Eval evaluates the curve at parameter t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau. The first
// half starts at exactly c.P0 and the second half ends at exactly c.P3.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Flatness returns an upper bound on the distance between the curve and the
// chord from P0 to P3.
//
// The curve lies within the convex hull of its control points, and the
// distance to a line segment is convex, so the bound is the larger of the
// distances of P1 and P2 to the chord.
func (c CubicBez) Flatness() float64 {
	return max(c.P1.SegmentDistance(c.P0, c.P3), c.P2.SegmentDistance(c.P0, c.P3))
}

// IsDegenerate reports whether all four points of the cubic coincide.
func (c CubicBez) IsDegenerate() bool {
	return c.P0 == c.P1 && c.P0 == c.P2 && c.P0 == c.P3
}

// ControlBox returns the smallest rectangle enclosing the control points. It
// encloses the curve but is generally larger than the curve's tight bounds.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}
