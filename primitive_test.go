package drafting

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPrimitivePoints(t *testing.T) {
	line := Line(Point{1, 2}, Point{3, 4})
	test.T(t, line.NPoints(), 2)
	test.T(t, line.Point(0), Point{1, 2})
	test.T(t, line.Point(-1), Point{3, 4})
	test.T(t, line.End(), Point{3, 4})

	arc := ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	test.T(t, arc.NPoints(), 3)
	test.T(t, arc.Point(1), Point{0, 1})
	test.T(t, arc.Point(-1), Point{-1, 0})

	curve := CurveBetween(Point{0, 0}, Point{1, 0}, Point{2, 1}, Point{3, 1})
	test.T(t, curve.NPoints(), 4)
	test.T(t, curve.Point(2), Point{2, 1})
	test.T(t, curve.End(), Point{3, 1})

	curve.SetPoint(-1, Point{5, 5})
	test.T(t, curve.P[2], Point{5, 5})
	curve.SetPoint(0, Point{-1, -1})
	test.T(t, curve.Org, Point{-1, -1})

	test.String(t, LineKind.String(), "Line")
	test.String(t, ArcKind.String(), "Arc")
	test.String(t, CurveKind.String(), "Curve")
	test.String(t, CloseKind.String(), "Close")
}

func TestArcInfo(t *testing.T) {
	// counter clockwise half circle
	center, r, start, end, ok := ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0}).ArcInfo()
	test.That(t, ok)
	test.T(t, center, Point{0, 0})
	test.Float(t, r, 1.0)
	test.Float(t, start, 0.0)
	test.Float(t, end, math.Pi)

	// clockwise half circle
	_, _, start, end, ok = ArcThrough(Point{1, 0}, Point{0, -1}, Point{-1, 0}).ArcInfo()
	test.That(t, ok)
	test.Float(t, start, 2.0*math.Pi)
	test.Float(t, end, math.Pi)

	// full circle
	center, r, start, end, ok = ArcThrough(Point{1, 0}, Point{-1, 0}, Point{1, 0}).ArcInfo()
	test.That(t, ok)
	test.T(t, center, Point{0, 0})
	test.Float(t, r, 1.0)
	test.Float(t, start, 0.0)
	test.Float(t, end, 2.0*math.Pi)

	// collinear points
	_, _, _, _, ok = ArcThrough(Point{0, 0}, Point{1, 0}, Point{2, 0}).ArcInfo()
	test.That(t, !ok)

	_, _, _, _, ok = Line(Point{0, 0}, Point{1, 0}).ArcInfo()
	test.That(t, !ok)
}

func TestPrimitiveLength(t *testing.T) {
	test.Float(t, Line(Point{0, 0}, Point{3, 4}).Length(), 5.0)
	test.Float(t, ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0}).Length(), math.Pi)
	test.Float(t, ArcThrough(Point{1, 0}, Point{0, -1}, Point{-1, 0}).Length(), math.Pi)
	test.Float(t, ArcThrough(Point{0, 0}, Point{1, 0}, Point{2, 0}).Length(), 0.0)

	line := CurveBetween(Point{0, 0}, Point{3, 0}, Point{7, 0}, Point{10, 0})
	test.That(t, math.Abs(line.Length()-10.0) < 1e-5)
}

func TestPrimitivePosDirAt(t *testing.T) {
	line := Line(Point{0, 0}, Point{10, 0})
	test.T(t, line.PosAt(0.0), Point{0, 0})
	test.T(t, line.PosAt(0.5), Point{5, 0})
	test.T(t, line.PosAt(1.0), Point{10, 0})
	test.T(t, line.DirAt(0.5), Point{10, 0})

	arc := ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	test.T(t, arc.PosAt(0.5), Point{0, 1})
	test.T(t, arc.DirAt(0.0), Point{0, 1})
	test.T(t, arc.DirAt(1.0), Point{0, -1})

	// clockwise arcs keep the counter clockwise normal, so the direction
	// points against the sense of travel
	cw := ArcThrough(Point{1, 0}, Point{0, -1}, Point{-1, 0})
	test.T(t, cw.DirAt(0.0), Point{0, 1})

	curve := CurveBetween(Point{0, 0}, Point{1, 0}, Point{2, 1}, Point{3, 1})
	test.T(t, curve.PosAt(0.0), Point{0, 0})
	test.T(t, curve.PosAt(1.0), Point{3, 1})
	test.T(t, curve.DirAt(0.0), Point{3, 0})
	test.T(t, curve.DirAt(1.0), Point{3, 0})
}

func TestPrimitiveClosestT(t *testing.T) {
	line := Line(Point{0, 0}, Point{10, 0})
	test.Float(t, line.ClosestT(Point{5, 3}), 0.5)
	test.Float(t, line.ClosestT(Point{-5, 0}), 0.0)
	test.Float(t, line.ClosestT(Point{15, 0}), 1.0)

	arc := ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	test.Float(t, arc.ClosestT(Point{2, 2}), 0.25)
	test.Float(t, arc.ClosestT(Point{2, 0}), 0.0)
	test.Float(t, arc.ClosestT(Point{-2, 0}), 1.0)

	curve := CurveBetween(Point{0, 0}, Point{0, 0}, Point{10, 0}, Point{10, 0})
	test.Float(t, curve.ClosestT(Point{0, 1}), 0.0)
	test.FloatDiff(t, curve.ClosestT(Point{10, 1}), 1.0, 1e-8)
	p := curve.PosAt(curve.ClosestT(Point{5, 1}))
	test.Float(t, p.X, 5.0)
	test.Float(t, p.Y, 0.0)
}

func TestPrimitiveOffset(t *testing.T) {
	line := Line(Point{0, 0}, Point{10, 0})
	line.Offset(2.0)
	test.T(t, line.Org, Point{0, 2})
	test.T(t, line.P[0], Point{10, 2})

	line = Line(Point{0, 0}, Point{10, 0})
	line.Offset(-2.0)
	test.T(t, line.Org, Point{0, -2})

	arc := ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	arc.Offset(1.0)
	test.T(t, arc.Org, Point{2, 0})
	test.T(t, arc.P[0], Point{0, 2})
	test.T(t, arc.P[1], Point{-2, 0})

	curve := CurveBetween(Point{0, 0}, Point{3, 1}, Point{7, 1}, Point{10, 0})
	org := curve
	curve.Offset(2.0)

	// the end points move along their tangent normals and the curve
	// interpolates the offset midpoint
	test.That(t, curve.PosAt(0.0).Equals(Point{3, 1}.Norm(2.0).Rot90CCW()))
	test.That(t, curve.PosAt(1.0).Equals(Point{10, 0}.Add(Point{3, -1}.Norm(2.0).Rot90CCW())))
	test.Float(t, curve.PosAt(0.5).Sub(org.PosAt(0.5)).Length(), 2.0)
	test.Float(t, curve.DirAt(0.0).PerpDot(org.DirAt(0.0)), 0.0)
	test.Float(t, curve.DirAt(1.0).PerpDot(org.DirAt(1.0)), 0.0)
}

func TestPrimitiveIsConvex(t *testing.T) {
	left := Line(Point{0, 0}, Point{10, 0})
	test.That(t, !left.IsConvex(Line(Point{10, 0}, Point{10, 10})))
	test.That(t, left.IsConvex(Line(Point{10, 0}, Point{10, -10})))
	test.That(t, !left.IsConvex(Line(Point{10, 0}, Point{20, 0}))) // straight on
	test.That(t, !left.IsConvex(Line(Point{10, 0}, Point{0, 0})))  // reversal
}

func TestPrimitiveCurves(t *testing.T) {
	line := Line(Point{0, 0}, Point{10, 0})
	curves := line.Curves()
	test.T(t, len(curves), 1)
	test.T(t, curves[0].Kind, CurveKind)
	test.T(t, curves[0].Org, Point{0, 0})
	test.T(t, curves[0].End(), Point{10, 0})

	quarter := ArcThrough(Point{1, 0}, PointFromAngle(math.Pi/4.0, 1.0), Point{0, 1})
	curves = quarter.Curves()
	test.T(t, len(curves), 1)
	test.T(t, curves[0].Org, Point{1, 0})
	test.T(t, curves[0].End(), Point{0, 1})

	half := ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	curves = half.Curves()
	test.T(t, len(curves), 2)
	test.T(t, curves[0].Org, Point{1, 0})
	test.T(t, curves[1].Org, curves[0].End())
	test.T(t, curves[1].End(), Point{-1, 0})

	full := ArcThrough(Point{1, 0}, Point{-1, 0}, Point{1, 0})
	curves = full.Curves()
	test.T(t, len(curves), 4)
	test.T(t, curves[3].End(), Point{1, 0})

	// approximation stays near the circle, radial error of a quarter
	// slice is below 3e-4
	for _, curve := range half.Curves() {
		for _, ti := range []float64{0.25, 0.5, 0.75} {
			test.FloatDiff(t, curve.PosAt(ti).Length(), 1.0, 3e-4)
		}
	}
}

func TestPrimitiveIntersections(t *testing.T) {
	// crossing lines
	a := Line(Point{0, 0}, Point{10, 0})
	b := Line(Point{5, -5}, Point{5, 5})
	ps := a.Intersections(b, 2)
	test.T(t, len(ps), 1)
	test.T(t, ps[0], Point{5, 0})

	// lines intersect on their unbounded extensions
	b = Line(Point{20, -5}, Point{20, 5})
	ps = a.Intersections(b, 2)
	test.T(t, len(ps), 1)
	test.T(t, ps[0], Point{20, 0})

	// parallel lines
	b = Line(Point{0, 1}, Point{10, 1})
	test.T(t, len(a.Intersections(b, 2)), 0)

	// secant line and arc
	arc := ArcThrough(Point{8, 0}, Point{5, 3}, Point{2, 0})
	ps = a.Intersections(arc, 2)
	test.T(t, len(ps), 2)

	// tangent line, single intersection
	tangent := ArcThrough(Point{10, 5}, Point{5, 10}, Point{0, 5})
	ps = a.Intersections(tangent, 2)
	test.T(t, len(ps), 1)
	test.T(t, ps[0], Point{5, 0})

	// intersecting circles
	c0 := ArcThrough(Point{5, 0}, Point{0, 5}, Point{-5, 0})
	c1 := ArcThrough(Point{13, 0}, Point{8, 5}, Point{3, 0})
	ps = c0.Intersections(c1, 2)
	test.T(t, len(ps), 2)
	test.T(t, ps[0], Point{4, -3})
	test.T(t, ps[1], Point{4, 3})

	// max limits the result
	ps = c0.Intersections(c1, 1)
	test.T(t, len(ps), 1)
	test.T(t, len(c0.Intersections(c1, 0)), 0)

	// Bézier against a line
	curve := CurveBetween(Point{0, -5}, Point{3, 5}, Point{7, -5}, Point{10, 5})
	ps = curve.Intersections(a, 4)
	test.T(t, len(ps), 1)
	test.T(t, ps[0], Point{5, 0})
}
