package drafting

import (
	"fmt"
	"math"
)

// Kind identifies the type of a primitive.
type Kind int

const (
	LineKind Kind = iota + 1
	ArcKind
	CurveKind
	CloseKind
)

func (kind Kind) String() string {
	switch kind {
	case LineKind:
		return "Line"
	case ArcKind:
		return "Arc"
	case CurveKind:
		return "Curve"
	case CloseKind:
		return "Close"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// Primitive is a self-contained piece of an outline: a straight line, a
// circular arc through an intermediate point, a cubic Bézier or a closing
// line. Org is the start point and P holds the control points: one for
// lines, through and end for arcs, two controls and end for Béziers. A
// close carries its endpoint (the segment start) explicitly so that every
// primitive can be evaluated on its own.
type Primitive struct {
	Kind Kind
	Org  Point
	P    [3]Point
}

// Line returns a straight line from org to end.
func Line(org, end Point) Primitive {
	return Primitive{Kind: LineKind, Org: org, P: [3]Point{end}}
}

// ArcThrough returns a circular arc from org through mid to end.
func ArcThrough(org, mid, end Point) Primitive {
	return Primitive{Kind: ArcKind, Org: org, P: [3]Point{mid, end}}
}

// CurveBetween returns a cubic Bézier from org to end with control points c1 and c2.
func CurveBetween(org, c1, c2, end Point) Primitive {
	return Primitive{Kind: CurveKind, Org: org, P: [3]Point{c1, c2, end}}
}

// closeLine returns a closing line from org back to the segment start.
func closeLine(org, start Point) Primitive {
	return Primitive{Kind: CloseKind, Org: org, P: [3]Point{start}}
}

// NPoints returns the number of points defining the primitive, including Org.
func (prim Primitive) NPoints() int {
	switch prim.Kind {
	case ArcKind:
		return 3
	case CurveKind:
		return 4
	}
	return 2
}

// Point returns point i, where 0 is Org, positive indices are the control
// points in order and -1 is the final point.
func (prim Primitive) Point(i int) Point {
	if i == 0 {
		return prim.Org
	} else if i < 0 {
		i += prim.NPoints()
	}
	return prim.P[i-1]
}

// SetPoint overwrites point i, using the same indexing as Point.
func (prim *Primitive) SetPoint(i int, p Point) {
	if i == 0 {
		prim.Org = p
		return
	} else if i < 0 {
		i += prim.NPoints()
	}
	prim.P[i-1] = p
}

// End returns the final point of the primitive.
func (prim Primitive) End() Point {
	return prim.P[prim.NPoints()-2]
}

// ArcInfo returns the center, radius and start/end angles of an arc
// primitive. The angles follow the arc direction, so end may be smaller
// than start for clockwise arcs, and an arc whose endpoints coincide is a
// full circle with end = start + 2PI. It returns false for non-arcs and
// for collinear (degenerate) arcs.
func (prim Primitive) ArcInfo() (Point, float64, float64, float64, bool) {
	if prim.Kind != ArcKind {
		return Point{}, 0.0, 0.0, 0.0, false
	}
	org, mid, end := prim.Org, prim.P[0], prim.P[1]

	var center Point
	if org.Equals(end) {
		center = org.Interpolate(mid, 0.5)
	} else {
		b, c := mid.Sub(org), end.Sub(org)
		d := 2.0 * b.PerpDot(c)
		if equal(d, 0.0) {
			// collinear points
			return Point{}, 0.0, 0.0, 0.0, false
		}
		b2, c2 := b.Dot(b), c.Dot(c)
		center = Point{(c.Y*b2 - b.Y*c2) / d, (b.X*c2 - c.X*b2) / d}.Add(org)
	}
	r := org.Sub(center).Length()

	start := org.Sub(center).Angle()
	var theta1 float64
	if org.Equals(end) {
		theta1 = start + 2.0*math.Pi
	} else {
		thetaMid := mid.Sub(center).Angle()
		theta1 = end.Sub(center).Angle()
		if theta1 > start {
			if thetaMid > theta1 || thetaMid < start {
				start += 2.0 * math.Pi
			}
		} else {
			if thetaMid < theta1 || thetaMid > start {
				theta1 += 2.0 * math.Pi
			}
		}
	}
	return center, r, start, theta1, true
}

// Length returns the arc length of the primitive. Degenerate arcs have
// zero length.
func (prim Primitive) Length() float64 {
	switch prim.Kind {
	case LineKind, CloseKind:
		return prim.P[0].Sub(prim.Org).Length()
	case ArcKind:
		_, r, start, end, ok := prim.ArcInfo()
		if !ok || start == end {
			return 0.0
		}
		delta := end - start
		if delta < 0.0 {
			delta += 2.0 * math.Pi
		}
		return r * delta
	case CurveKind:
		return gaussLegendre7(func(t float64) float64 {
			return prim.DirAt(t).Length()
		}, 0.0, 1.0)
	}
	return 0.0
}

// fastLength is Length with a cheaper quadrature for Béziers. Used by the
// operation trims, where the length only feeds an approximate parameter
// mapping.
func (prim Primitive) fastLength() float64 {
	if prim.Kind == CurveKind {
		return gaussLegendre5(func(t float64) float64 {
			return prim.DirAt(t).Length()
		}, 0.0, 1.0)
	}
	return prim.Length()
}

// PosAt returns the position at parameter t in [0,1] along the primitive.
func (prim Primitive) PosAt(t float64) Point {
	switch prim.Kind {
	case LineKind, CloseKind:
		return prim.Org.Interpolate(prim.P[0], t)
	case ArcKind:
		center, r, start, end, ok := prim.ArcInfo()
		if !ok {
			return prim.Org.Interpolate(prim.P[1], t)
		}
		return center.Add(PointFromAngle((end-start)*t+start, r))
	case CurveKind:
		p0, p1, p2, p3 := prim.Org, prim.P[0], prim.P[1], prim.P[2]
		u := 1.0 - t
		return p0.Mul(u * u * u).Add(p1.Mul(3.0 * u * u * t)).Add(p2.Mul(3.0 * u * t * t)).Add(p3.Mul(t * t * t))
	}
	return prim.Org
}

// DirAt returns the direction vector at parameter t. Lines have a constant
// direction, arcs get the counter clockwise normal of the radial vector
// and Béziers their derivative. The vector is not normalized.
func (prim Primitive) DirAt(t float64) Point {
	switch prim.Kind {
	case LineKind, CloseKind:
		return prim.P[0].Sub(prim.Org)
	case ArcKind:
		_, _, start, end, ok := prim.ArcInfo()
		if !ok {
			return prim.P[1].Sub(prim.Org)
		}
		return PointFromAngle((end-start)*t+start, 1.0).Rot90CCW()
	case CurveKind:
		p0, p1, p2, p3 := prim.Org, prim.P[0], prim.P[1], prim.P[2]
		u := 1.0 - t
		return p1.Sub(p0).Mul(3.0 * u * u).Add(p2.Sub(p1).Mul(6.0 * u * t)).Add(p3.Sub(p2).Mul(3.0 * t * t))
	}
	return Point{}
}

// ClosestT returns the parameter in [0,1] whose position is closest to p.
func (prim Primitive) ClosestT(p Point) float64 {
	switch prim.Kind {
	case LineKind, CloseKind:
		v := prim.P[0].Sub(prim.Org)
		d := v.Dot(v)
		if equal(d, 0.0) {
			return 0.0
		}
		t := p.Sub(prim.Org).Dot(v) / d
		return math.Max(0.0, math.Min(1.0, t))
	case ArcKind:
		center, _, start, end, ok := prim.ArcInfo()
		if !ok || start == end {
			return 0.0
		}
		sweep := end - start
		theta := p.Sub(center).Angle()
		var t float64
		if 0.0 < sweep {
			t = angleNorm(theta-start) / sweep
		} else {
			t = angleNorm(start-theta) / -sweep
		}
		if 1.0 < t {
			// outside the sweep, pick the nearer end point
			if prim.PosAt(1.0).Sub(p).Length() < prim.PosAt(0.0).Sub(p).Length() {
				return 1.0
			}
			return 0.0
		}
		return t
	case CurveKind:
		return prim.closestTCurve(p)
	}
	return 0.0
}

// closestTCurve samples the Bézier and refines the best bracket by bisection
// on the distance derivative.
func (prim Primitive) closestTCurve(p Point) float64 {
	const n = 16
	best, bestDist := 0.0, math.Inf(1.0)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		if dist := prim.PosAt(t).Sub(p).Length(); dist < bestDist {
			best, bestDist = t, dist
		}
	}
	lo := math.Max(0.0, best-1.0/float64(n))
	hi := math.Min(1.0, best+1.0/float64(n))
	for i := 0; i < 32; i++ {
		t := (lo + hi) / 2.0
		// derivative of the squared distance
		if prim.PosAt(t).Sub(p).Dot(prim.DirAt(t)) < 0.0 {
			lo = t
		} else {
			hi = t
		}
	}
	return (lo + hi) / 2.0
}

// Offset displaces the primitive parallel to itself by the given distance,
// positive towards the counter clockwise normal of its direction. Lines
// translate, arcs change radius and Béziers get an approximation that
// preserves the end point tangents and interpolates the offset midpoint.
func (prim *Primitive) Offset(offset float64) {
	switch prim.Kind {
	case LineKind, CloseKind:
		normal := prim.P[0].Sub(prim.Org).Norm(offset).Rot90CCW()
		prim.Org = prim.Org.Add(normal)
		prim.P[0] = prim.P[0].Add(normal)
	case ArcKind:
		center, r, _, _, ok := prim.ArcInfo()
		if !ok {
			return
		}
		prim.Org = center.Add(prim.Org.Sub(center).Norm(r + offset))
		prim.P[0] = center.Add(prim.P[0].Sub(center).Norm(r + offset))
		prim.P[1] = center.Add(prim.P[1].Sub(center).Norm(r + offset))
	case CurveKind:
		prim.offsetCurve(offset)
	}
}

func (prim *Primitive) offsetCurve(offset float64) {
	const m = 0.5
	const mm = 1.0 - m

	p0, p3 := prim.Org, prim.P[2]
	v0 := prim.P[0].Sub(p0)
	v3 := p3.Sub(prim.P[1])

	vm := prim.DirAt(m).Norm(offset).Rot90CCW()
	pm := prim.PosAt(m).Add(vm)

	p0 = p0.Add(v0.Norm(offset).Rot90CCW())
	p3 = p3.Add(v3.Norm(offset).Rot90CCW())

	var p1, p2 Point
	if equal(v0.PerpDot(v3), 0.0) {
		// parallel end tangents, fit the controls on the midpoint instead
		p1 = p0.Add(v0).Add(vm.Mul(4.0 / 3.0))
		p2 = p3.Sub(v3).Add(vm.Mul(4.0 / 3.0))
	} else {
		pk := pm.Sub(p0.Mul(mm * mm * (1.0 + 2.0*m))).Sub(p3.Mul(m * m * (1.0 + 2.0*mm)))
		var k0, k3 float64
		if v0.X != 0.0 {
			k3 = (pk.Y - pk.X*v0.Y/v0.X) / (m * m * mm * 3.0 * (v3.Y - v3.X*v0.Y/v0.X))
			k0 = (pk.X - m*m*mm*3.0*k3*v3.X) / (mm * mm * m * 3.0 * v0.X)
		} else {
			k0 = (pk.Y - pk.X*v3.Y/v3.X) / (mm * mm * m * 3.0 * (v0.Y - v0.X*v3.Y/v3.X))
			k3 = (pk.X - mm*mm*m*3.0*k0*v0.X) / (m * m * mm * 3.0 * v3.X)
		}
		p1 = p0.Add(v0.Mul(k0))
		p2 = p3.Add(v3.Mul(k3))
	}
	prim.Org = p0
	prim.P[0], prim.P[1], prim.P[2] = p1, p2, p3
}

// IsConvex returns true when the joint between prim and next turns further
// than PI counter clockwise, ie. the outline bulges towards the side the
// counter clockwise normal points away from. A straight (collinear) joint
// is not convex.
func (prim Primitive) IsConvex(next Primitive) bool {
	angle1 := prim.DirAt(1.0).Angle()
	angle2 := next.DirAt(0.0).Angle()
	if angle1 > angle2 {
		angle1 -= 2.0 * math.Pi
	}
	return angle2-angle1 > math.Pi
}

// Curves approximates the primitive by cubic Béziers, splitting arcs in
// slices of at most a quarter turn. Lines become a single Bézier with the
// controls on the end points.
func (prim Primitive) Curves() []Primitive {
	switch prim.Kind {
	case CurveKind:
		return []Primitive{prim}
	case LineKind, CloseKind:
		return []Primitive{CurveBetween(prim.Org, prim.Org, prim.P[0], prim.P[0])}
	case ArcKind:
		center, r, start, end, ok := prim.ArcInfo()
		if !ok {
			return []Primitive{CurveBetween(prim.Org, prim.Org, prim.P[1], prim.P[1])}
		}
		n := 1 + int((math.Abs(end-start)-Epsilon)/(math.Pi/2.0))
		if n < 1 {
			n = 1
		}
		curves := make([]Primitive, 0, n)
		org := prim.Org
		for i := 0; i < n; i++ {
			theta1 := start + (end-start)*float64(i)/float64(n)
			theta2 := start + (end-start)*float64(i+1)/float64(n)
			h := 4.0 / 3.0 * math.Tan((theta2-theta1)/4.0)
			sin1, cos1 := math.Sincos(theta1)
			sin2, cos2 := math.Sincos(theta2)
			c1 := center.Add(Point{r * (cos1 - h*sin1), r * (sin1 + h*cos1)})
			c2 := center.Add(Point{r * (cos2 + h*sin2), r * (sin2 - h*cos2)})
			pEnd := center.Add(Point{r * cos2, r * sin2})
			if i == n-1 {
				pEnd = prim.P[1] // keep the exact end point
			}
			curves = append(curves, CurveBetween(org, c1, c2, pEnd))
			org = pEnd
		}
		return curves
	}
	return nil
}

// Intersections appends to dst the intersections between prim and other,
// computed on the underlying unbounded shapes: lines extend infinitely and
// arcs count as full circles, so an intersection may lie outside either
// primitive's extent. Béziers are flattened first and intersected piecewise
// within their extent. At most max intersections are returned; zero
// intersections is a recoverable outcome, not an error.
func (prim Primitive) Intersections(other Primitive, max int) []Point {
	if max == 0 {
		return nil
	}
	a, b := prim, other
	if a.Kind == CloseKind {
		a.Kind = LineKind
	}
	if b.Kind == CloseKind {
		b.Kind = LineKind
	}

	var ps []Point
	switch {
	case a.Kind == LineKind && b.Kind == LineKind:
		if p, ok := intersectionLineLine(a.Org, a.P[0], b.Org, b.P[0]); ok {
			ps = append(ps, p)
		}
	case a.Kind == LineKind && b.Kind == ArcKind:
		ps = intersectionsLineArc(a, b)
	case a.Kind == ArcKind && b.Kind == LineKind:
		ps = intersectionsLineArc(b, a)
	case a.Kind == ArcKind && b.Kind == ArcKind:
		c0, r0, _, _, ok0 := a.ArcInfo()
		c1, r1, _, _, ok1 := b.ArcInfo()
		if ok0 && ok1 {
			if p0, p1, ok := intersectionCircleCircle(c0, r0, c1, r1); ok {
				ps = append(ps, p0)
				if !p0.Equals(p1) {
					ps = append(ps, p1)
				}
			}
		}
	default:
		// at least one Bézier
		ps = intersectionsFlattened(a, b)
	}
	if max < len(ps) {
		ps = ps[:max]
	}
	return ps
}

func intersectionsLineArc(line, arc Primitive) []Point {
	center, r, _, _, ok := arc.ArcInfo()
	if !ok {
		return nil
	}
	p0, p1, ok := intersectionRayCircle(line.Org, line.P[0], center, r)
	if !ok {
		return nil
	}
	if p0.Equals(p1) {
		return []Point{p0}
	}
	return []Point{p0, p1}
}
