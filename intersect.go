package drafting

import "math"

// intersectionLineLine returns the intersection of the two unbounded lines
// through a0-a1 and b0-b1, or false when they are parallel.
func intersectionLineLine(a0, a1, b0, b1 Point) (Point, bool) {
	va := a1.Sub(a0)
	vb := b1.Sub(b0)
	div := va.PerpDot(vb)
	if equal(div, 0.0) {
		// parallel
		return Point{}, false
	}
	t := ((a0.Y-b0.Y)*vb.X - (a0.X-b0.X)*vb.Y) / div
	return a0.Add(va.Mul(t)), true
}

// intersectionSegmentSegment returns the intersection of the two bounded
// segments a0-a1 and b0-b1.
func intersectionSegmentSegment(a0, a1, b0, b1 Point) (Point, bool) {
	va := a1.Sub(a0)
	vb := b1.Sub(b0)
	div := va.PerpDot(vb)
	if equal(div, 0.0) {
		return Point{}, false
	}
	ta := ((a0.Y-b0.Y)*vb.X - (a0.X-b0.X)*vb.Y) / div
	tb := ((a0.Y-b0.Y)*va.X - (a0.X-b0.X)*va.Y) / div
	if ta < 0.0 || 1.0 < ta || tb < 0.0 || 1.0 < tb {
		return Point{}, false
	}
	return a0.Add(va.Mul(ta)), true
}

// http://mathworld.wolfram.com/Circle-LineIntersection.html
func intersectionRayCircle(l0, l1, c Point, r float64) (Point, Point, bool) {
	d := l1.Sub(l0).Norm(1.0) // along line direction, anchored in l0, its length is 1
	D := l0.Sub(c).PerpDot(d)
	discriminant := r*r - D*D
	if discriminant < 0 {
		return Point{}, Point{}, false
	}
	discriminant = math.Sqrt(discriminant)

	ax := D * d.Y
	bx := d.X * discriminant
	if d.Y < 0.0 {
		bx = -bx
	}
	ay := -D * d.X
	by := math.Abs(d.Y) * discriminant
	return c.Add(Point{ax + bx, ay + by}), c.Add(Point{ax - bx, ay - by}), true
}

// https://math.stackexchange.com/questions/256100/how-can-i-find-the-points-at-which-two-circles-intersect
// https://gist.github.com/jupdike/bfe5eb23d1c395d8a0a1a4ddd94882ac
func intersectionCircleCircle(c0 Point, r0 float64, c1 Point, r1 float64) (Point, Point, bool) {
	R := c0.Sub(c1).Length()
	if R < math.Abs(r0-r1) || r0+r1 < R || c0.Equals(c1) {
		return Point{}, Point{}, false
	}
	R2 := R * R

	k := r0*r0 - r1*r1
	a := 0.5
	b := 0.5 * k / R2
	c := 0.5 * math.Sqrt(2.0*(r0*r0+r1*r1)/R2-k*k/(R2*R2)-1.0)

	i0 := c0.Add(c1).Mul(a)
	i1 := c1.Sub(c0).Mul(b)
	i2 := Point{c1.Y - c0.Y, c0.X - c1.X}.Mul(c)
	return i0.Add(i1).Add(i2), i0.Add(i1).Sub(i2), true
}

// flatten approximates the primitive by n chords.
func flatten(prim Primitive, n int) []Point {
	ps := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		ps[i] = prim.PosAt(float64(i) / float64(n))
	}
	return ps
}

// intersectionsFlattened intersects two primitives of which at least one is
// a Bézier by flattening both and intersecting the chords pairwise. Nearly
// coincident hits on adjacent chords are merged.
func intersectionsFlattened(a, b Primitive) []Point {
	const n = 64
	pa := flatten(a, n)
	pb := flatten(b, n)

	var ps []Point
	for i := 1; i < len(pa); i++ {
		for j := 1; j < len(pb); j++ {
			p, ok := intersectionSegmentSegment(pa[i-1], pa[i], pb[j-1], pb[j])
			if !ok {
				continue
			}
			if 0 < len(ps) && ps[len(ps)-1].Equals(p) {
				continue
			}
			ps = append(ps, p)
		}
	}
	return ps
}
