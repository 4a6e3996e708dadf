package drafting

// Segment is a contiguous run of primitives starting at Start. A
// well-formed segment is never empty and its primitives chain head to
// tail: each primitive's Org is the previous primitive's end point.
type Segment struct {
	Start Point
	Prims []Primitive
}

// Len returns the number of primitives.
func (seg Segment) Len() int {
	return len(seg.Prims)
}

// Closed returns true when the segment ends in a closing line.
func (seg Segment) Closed() bool {
	return 0 < len(seg.Prims) && seg.Prims[len(seg.Prims)-1].Kind == CloseKind
}

// Length returns the total arc length of the segment.
func (seg Segment) Length() float64 {
	d := 0.0
	for i := range seg.Prims {
		d += seg.Prims[i].Length()
	}
	return d
}

// Clone returns a deep copy of the segment.
func (seg Segment) Clone() Segment {
	prims := make([]Primitive, len(seg.Prims))
	copy(prims, seg.Prims)
	return Segment{Start: seg.Start, Prims: prims}
}

// Transform applies the affine transformation matrix m to every point of
// the segment.
func (seg *Segment) Transform(m Matrix) {
	seg.Start = m.Dot(seg.Start)
	for i := range seg.Prims {
		prim := &seg.Prims[i]
		prim.Org = m.Dot(prim.Org)
		for j := 0; j < prim.NPoints()-1; j++ {
			prim.P[j] = m.Dot(prim.P[j])
		}
	}
}

// Reverse reverses the walking direction of the segment in place. Each
// primitive swaps its end points and control point order, arcs keep their
// through point so the geometry is unchanged. A closed segment stays
// closed: the closing line becomes the first (regular) line and the former
// first primitive closes the segment. Reversing twice restores the
// original segment.
func (seg *Segment) Reverse() {
	if len(seg.Prims) == 0 {
		panic("cannot reverse an empty segment")
	}
	closed := seg.Closed()
	prims := make([]Primitive, 0, len(seg.Prims))
	for i := len(seg.Prims) - 1; 0 <= i; i-- {
		prims = append(prims, reversePrim(seg.Prims[i]))
	}
	if closed {
		prims[0].Kind = LineKind
		prims[len(prims)-1].Kind = CloseKind
	}
	seg.Start = prims[0].Org
	seg.Prims = prims
}

func reversePrim(prim Primitive) Primitive {
	switch prim.Kind {
	case ArcKind:
		return ArcThrough(prim.P[1], prim.P[0], prim.Org)
	case CurveKind:
		return CurveBetween(prim.P[2], prim.P[1], prim.P[0], prim.Org)
	}
	rev := Line(prim.P[0], prim.Org)
	rev.Kind = prim.Kind
	return rev
}
