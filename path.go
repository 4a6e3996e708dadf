package drafting

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCurrentPoint is returned when a primitive is appended while the
	// path has no current point.
	ErrNoCurrentPoint = errors.New("path has no current point")

	// ErrNoLastPrimitive is returned when an operation is requested while
	// the current segment has no primitive to operate on.
	ErrNoLastPrimitive = errors.New("path has no primitive to operate on")

	// ErrPendingOperation is returned when an operation is requested while
	// another one is still pending, or when a snapshot is taken of a path
	// with an unresolved operation. The pending operation is not affected.
	ErrPendingOperation = errors.New("another operation is already pending")

	// ErrOperationAbandoned is returned by Clear when a pending operation
	// is dropped without being resolved.
	ErrOperationAbandoned = errors.New("pending operation abandoned")

	// ErrDegenerate is wrapped by errors reporting that an operation could
	// not be resolved on the actual geometry, such as a chamfer longer than
	// its primitive or a fillet radius that fits no arc. The operation is
	// abandoned and the operand primitives are left untouched.
	ErrDegenerate = errors.New("degenerate geometry")
)

type opKind int

const (
	opNone opKind = iota
	opChamfer
	opFillet
)

type operation struct {
	kind           opKind
	delta1, delta2 float64 // chamfer
	radius         float64 // fillet
}

// Path builds an outline out of segments. The zero value is an empty path
// ready for use. Besides the usual move/line/arc/curve/close building
// blocks it supports deferred chamfer and fillet operations: requesting one
// stores it as pending and the next appended primitive resolves it against
// the last one, trimming both around their joint. At most one operation can
// be pending at a time.
//
// Methods report usage violations and geometric degeneracies as errors; a
// failing call never corrupts the path. A Path also embeds a Model so that
// named reference points can travel with the outline they belong to. A Path
// is not safe for concurrent use.
type Path struct {
	Model

	segs    []Segment
	cp      Point
	cpValid bool
	op      operation
	drawing []Segment
}

func (p *Path) invalidate() {
	p.drawing = nil
}

// Current returns the current point, if there is one. There is no current
// point on an empty path and right after a close.
func (p *Path) Current() (Point, bool) {
	return p.cp, p.cpValid
}

// Last returns the most recently appended primitive.
func (p *Path) Last() (Primitive, bool) {
	for i := len(p.segs) - 1; 0 <= i; i-- {
		if n := len(p.segs[i].Prims); 0 < n {
			return p.segs[i].Prims[n-1], true
		}
	}
	return Primitive{}, false
}

// Over returns the primitive appended before the last one.
func (p *Path) Over() (Primitive, bool) {
	skipped := false
	for i := len(p.segs) - 1; 0 <= i; i-- {
		for j := len(p.segs[i].Prims) - 1; 0 <= j; j-- {
			if !skipped {
				skipped = true
				continue
			}
			return p.segs[i].Prims[j], true
		}
	}
	return Primitive{}, false
}

// lastInCurrent returns the last primitive of the current segment, or nil.
// The pointer is only valid until the next mutation.
func (p *Path) lastInCurrent() *Primitive {
	if len(p.segs) == 0 {
		return nil
	}
	seg := &p.segs[len(p.segs)-1]
	if len(seg.Prims) == 0 {
		return nil
	}
	return &seg.Prims[len(seg.Prims)-1]
}

// MoveTo starts a new segment at (x,y). Moving while an operation is
// pending abandons the operation, which is reported as an error; the move
// itself is always performed.
func (p *Path) MoveTo(x, y float64) error {
	var err error
	if p.op.kind != opNone {
		err = ErrOperationAbandoned
		p.op = operation{}
	}
	if 0 < len(p.segs) && len(p.segs[len(p.segs)-1].Prims) == 0 {
		p.segs[len(p.segs)-1].Start = Point{x, y}
	} else {
		p.segs = append(p.segs, Segment{Start: Point{x, y}})
	}
	p.cp = Point{x, y}
	p.cpValid = true
	p.invalidate()
	return err
}

// LineTo appends a straight line from the current point to (x,y).
func (p *Path) LineTo(x, y float64) error {
	if !p.cpValid {
		return ErrNoCurrentPoint
	}
	return p.append(Line(p.cp, Point{x, y}))
}

// ArcTo appends a circular arc from the current point through (x1,y1) to
// (x2,y2).
func (p *Path) ArcTo(x1, y1, x2, y2 float64) error {
	if !p.cpValid {
		return ErrNoCurrentPoint
	}
	return p.append(ArcThrough(p.cp, Point{x1, y1}, Point{x2, y2}))
}

// CurveTo appends a cubic Bézier from the current point to (x3,y3) with
// control points (x1,y1) and (x2,y2).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if !p.cpValid {
		return ErrNoCurrentPoint
	}
	return p.append(CurveBetween(p.cp, Point{x1, y1}, Point{x2, y2}, Point{x3, y3}))
}

// Close appends a closing line from the current point back to the segment
// start. The current point becomes invalid afterwards.
func (p *Path) Close() error {
	if !p.cpValid {
		return ErrNoCurrentPoint
	}
	return p.append(closeLine(p.cp, p.segs[len(p.segs)-1].Start))
}

// Arc appends a circular arc around center (xc,yc) with radius r from
// angle start to angle end. When the path has a current point that does
// not coincide with the arc start, a connecting line is appended first;
// without a current point the arc starts a new segment.
func (p *Path) Arc(xc, yc, r, start, end float64) error {
	center := Point{xc, yc}
	p0 := center.Add(PointFromAngle(start, r))
	p1 := center.Add(PointFromAngle(start+(end-start)/2.0, r))
	p2 := center.Add(PointFromAngle(end, r))

	if !p.cpValid {
		if err := p.MoveTo(p0.X, p0.Y); err != nil {
			return err
		}
	} else if !p.cp.Equals(p0) {
		if err := p.LineTo(p0.X, p0.Y); err != nil {
			return err
		}
	}
	return p.ArcTo(p1.X, p1.Y, p2.X, p2.Y)
}

// Append appends prim as the continuation of the path. Its origin must
// coincide with the current point.
func (p *Path) Append(prim Primitive) error {
	if !p.cpValid {
		return ErrNoCurrentPoint
	}
	if !prim.Org.Equals(p.cp) {
		return fmt.Errorf("primitive origin %v does not continue the current point %v", prim.Org, p.cp)
	}
	return p.append(prim)
}

// AppendSegment appends all primitives of seg, starting a new segment at
// its start point.
func (p *Path) AppendSegment(seg Segment) error {
	if err := p.MoveTo(seg.Start.X, seg.Start.Y); err != nil {
		return err
	}
	for _, prim := range seg.Prims {
		var err error
		if prim.Kind == CloseKind {
			err = p.Close()
		} else {
			err = p.append(prim)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Chamfer requests a chamfer between the last appended primitive and the
// primitive appended next: the last primitive is trimmed by delta1 before
// its end, the next one by delta2 after its start, and a straight line
// joins the trimmed ends. When the last primitive is a closing line the
// operation resolves immediately against the first primitive of the
// segment, rewriting the close into a regular line.
func (p *Path) Chamfer(delta1, delta2 float64) error {
	return p.request(operation{kind: opChamfer, delta1: delta1, delta2: delta2})
}

// Fillet requests a fillet with the given radius between the last appended
// primitive and the primitive appended next: both are trimmed around their
// joint and a circular arc of the given radius joins them tangentially.
// When the last primitive is a closing line the operation resolves
// immediately against the first primitive of the segment, rewriting the
// close into a regular line.
func (p *Path) Fillet(radius float64) error {
	return p.request(operation{kind: opFillet, radius: radius})
}

func (p *Path) request(op operation) error {
	last := p.lastInCurrent()
	if last == nil {
		return ErrNoLastPrimitive
	}
	if p.op.kind != opNone {
		return ErrPendingOperation
	}
	p.op = op
	if last.Kind == CloseKind {
		return p.resolveOnClose()
	}
	return nil
}

// Clear empties the path. A pending operation is abandoned, which is
// reported as an error.
func (p *Path) Clear() error {
	var err error
	if p.op.kind != opNone {
		err = ErrOperationAbandoned
		p.op = operation{}
	}
	p.segs = nil
	p.cpValid = false
	p.invalidate()
	return err
}

// Segments returns a deep copy of the path content, skipping segments that
// have no primitives yet. Taking a snapshot while an operation is pending
// returns ErrPendingOperation, as the outline is not settled.
func (p *Path) Segments() ([]Segment, error) {
	if p.op.kind != opNone {
		return nil, ErrPendingOperation
	}
	segs := make([]Segment, 0, len(p.segs))
	for _, seg := range p.segs {
		if len(seg.Prims) == 0 {
			continue
		}
		segs = append(segs, seg.Clone())
	}
	return segs, nil
}

// Drawing returns the path content with all arcs expanded to cubic Bézier
// approximations, for consumers that do not understand three-point arcs.
// The expansion is cached until the next mutation.
func (p *Path) Drawing() ([]Segment, error) {
	if p.op.kind != opNone {
		return nil, ErrPendingOperation
	}
	if p.drawing == nil {
		p.drawing = make([]Segment, 0, len(p.segs))
		for _, seg := range p.segs {
			if len(seg.Prims) == 0 {
				continue
			}
			prims := make([]Primitive, 0, len(seg.Prims))
			for _, prim := range seg.Prims {
				if prim.Kind == ArcKind {
					prims = append(prims, prim.Curves()...)
				} else {
					prims = append(prims, prim)
				}
			}
			p.drawing = append(p.drawing, Segment{Start: seg.Start, Prims: prims})
		}
	}
	segs := make([]Segment, len(p.drawing))
	for i, seg := range p.drawing {
		segs[i] = seg.Clone()
	}
	return segs, nil
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	d := 0.0
	for i := range p.segs {
		d += p.segs[i].Length()
	}
	return d
}

// append resolves any pending operation against prim and then appends it
// to the current segment.
func (p *Path) append(prim Primitive) error {
	var opErr error
	switch p.op.kind {
	case opChamfer:
		opErr = p.doChamfer(&prim)
	case opFillet:
		opErr = p.doFillet(&prim)
	}

	seg := &p.segs[len(p.segs)-1]
	seg.Prims = append(seg.Prims, prim)
	if prim.Kind == CloseKind {
		p.cpValid = false
	} else {
		p.cp = prim.End()
		p.cpValid = true
	}
	p.invalidate()
	return opErr
}

// resolveOnClose resolves the pending operation between the closing line
// just appended and the first primitive of its segment. On success the
// close becomes a regular line, the joint primitive is appended at the end
// of the segment and the segment start moves to the trimmed start of the
// first primitive, keeping the loop closed. On failure the segment is left
// untouched.
func (p *Path) resolveOnClose() error {
	seg := &p.segs[len(p.segs)-1]
	cl := &seg.Prims[len(seg.Prims)-1]
	cl.Kind = LineKind

	first := seg.Prims[0]
	var err error
	switch p.op.kind {
	case opChamfer:
		err = p.doChamfer(&first)
	case opFillet:
		err = p.doFillet(&first)
	}
	if err != nil {
		cl.Kind = CloseKind
		return err
	}

	seg.Prims[0].Org = first.Org
	seg.Start = first.Org
	p.invalidate()
	return nil
}

// doChamfer trims the last primitive by delta1 before its end and cur by
// delta2 after its start, and appends the connecting line. cur itself is
// not appended.
func (p *Path) doChamfer(cur *Primitive) error {
	op := p.op
	p.op = operation{}

	seg := &p.segs[len(p.segs)-1]
	last := &seg.Prims[len(seg.Prims)-1]

	len1 := last.fastLength()
	if len1 <= op.delta1 {
		return fmt.Errorf("%w: chamfer %g does not fit the last primitive of length %g", ErrDegenerate, op.delta1, len1)
	}
	len2 := cur.fastLength()
	if len2 <= op.delta2 {
		return fmt.Errorf("%w: chamfer %g does not fit the next primitive of length %g", ErrDegenerate, op.delta2, len2)
	}

	p1 := last.PosAt(1.0 - op.delta1/len1)
	p2 := cur.PosAt(op.delta2 / len2)
	last.SetPoint(-1, p1)
	cur.Org = p2
	seg.Prims = append(seg.Prims, Line(p1, p2))
	return nil
}

// doFillet trims the last primitive and cur around their joint and appends
// the arc of the requested radius that joins them tangentially. cur itself
// is not appended. The fillet center is found by intersecting both
// primitives displaced sideways by the radius, towards the joint or away
// from it depending on the convexity of the corner.
func (p *Path) doFillet(cur *Primitive) error {
	op := p.op
	p.op = operation{}

	seg := &p.segs[len(p.segs)-1]
	last := &seg.Prims[len(seg.Prims)-1]

	lastOff, curOff := *last, *cur
	offset := op.radius
	if lastOff.IsConvex(curOff) {
		offset = -op.radius
	}
	lastOff.Offset(offset)
	curOff.Offset(offset)
	centers := curOff.Intersections(lastOff, 1)
	if len(centers) == 0 {
		return fmt.Errorf("%w: fillet with radius %g is not applicable", ErrDegenerate, op.radius)
	}
	center := centers[0]

	// tangent points on the original primitives
	v := lastOff.DirAt(lastOff.ClosestT(center)).Norm(offset).Rot90CCW()
	p0 := center.Sub(v)
	p1 := center.Add(cur.Org.Sub(center).Norm(op.radius))
	v = curOff.DirAt(curOff.ClosestT(center)).Norm(offset).Rot90CCW()
	p2 := center.Sub(v)

	last.SetPoint(-1, p0)
	cur.Org = p2
	seg.Prims = append(seg.Prims, ArcThrough(p0, p1, p2))
	return nil
}
