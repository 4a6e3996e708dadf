package drafting

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSegment(t *testing.T) {
	p := MustParsePath("M0 0L10 0A15 5 20 0L30 0")
	seg := p.segs[0]
	test.T(t, seg.Len(), 3)
	test.That(t, !seg.Closed())
	test.Float(t, seg.Length(), 10.0+5.0*math.Pi+10.0)

	p = MustParsePath("M0 0L10 0L10 10L0 10Z")
	test.That(t, p.segs[0].Closed())
	test.Float(t, p.segs[0].Length(), 40.0)
}

func TestSegmentClone(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10")
	seg := p.segs[0]
	clone := seg.Clone()
	clone.Prims[0].P[0] = Point{99, 99}
	test.T(t, seg.Prims[0].P[0], Point{10, 0})
}

func TestSegmentTransform(t *testing.T) {
	p := MustParsePath("M0 0L10 0A15 5 20 0C25 5 30 5 35 0")
	seg := p.segs[0].Clone()
	seg.Transform(Identity.Translate(2.0, 3.0))
	test.T(t, seg.Start, Point{2, 3})
	test.T(t, seg.Prims[1].P[0], Point{17, 8})
	test.T(t, seg.Prims[2].P[2], Point{37, 3})

	// transforming by m then by its inverse is the identity
	seg2 := p.segs[0].Clone()
	m := Identity.Translate(1.0, 2.0).Rotate(0.25*math.Pi).Scale(2.0, 2.0)
	seg2.Transform(m)
	seg2.Transform(m.Inv())
	test.T(t, seg2.Start, p.segs[0].Start)
	for i := range seg2.Prims {
		test.That(t, seg2.Prims[i].Org.Equals(p.segs[0].Prims[i].Org))
		test.That(t, seg2.Prims[i].End().Equals(p.segs[0].Prims[i].End()))
	}
}

func TestSegmentReverse(t *testing.T) {
	p := MustParsePath("M0 0L10 0A15 5 20 0C25 5 30 5 35 0")
	seg := p.segs[0].Clone()
	seg.Reverse()
	test.T(t, seg.Start, Point{35, 0})
	test.T(t, seg.Prims[0].Kind, CurveKind)
	test.T(t, seg.Prims[0].Org, Point{35, 0})
	test.T(t, seg.Prims[0].P[0], Point{30, 5})
	test.T(t, seg.Prims[1].Kind, ArcKind)
	test.T(t, seg.Prims[1].P[0], Point{15, 5})
	test.T(t, seg.Prims[2].End(), Point{0, 0})

	// reversing twice restores the original
	seg.Reverse()
	test.T(t, seg, p.segs[0])
}

func TestSegmentReverseClosed(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10Z")
	seg := p.segs[0].Clone()
	seg.Reverse()
	test.That(t, seg.Closed())
	test.T(t, seg.Start, Point{0, 0})
	test.T(t, seg.Prims[0].Kind, LineKind)
	test.T(t, seg.Prims[0].P[0], Point{10, 10})
	test.T(t, seg.Prims[2].Kind, CloseKind)
	test.T(t, seg.Prims[2].P[0], Point{0, 0})

	seg.Reverse()
	test.T(t, seg, p.segs[0])
}

func TestSegmentReverseEmpty(t *testing.T) {
	var seg Segment
	defer func() {
		test.That(t, recover() != nil)
	}()
	seg.Reverse()
}
