package drafting

import (
	"errors"
	"fmt"
	"math"
)

// ErrParallelLines is returned when an angular dimension is requested
// between parallel directions, which subtend no angle.
var ErrParallelLines = errors.New("cannot measure the angle between parallel lines")

// ADim is an angular dimension: it measures the angle between the
// directions org1->ref1 and org2->ref2. The baseline is the arc centered
// on the intersection of the two directions passing at the distance of
// Pos, and the extension lines connect the reference points to it.
//
// The geometry is solved lazily and cached; changing any input requires a
// call to Invalidate. Solving fails with ErrParallelLines when the two
// directions do not intersect, leaving any previously cached geometry
// untouched.
type ADim struct {
	Dim
	Org1, Org2                   Point
	HasExtension1, HasExtension2 bool

	model *Model
	names adimNames

	arranged       bool
	angle1, angle2 float64
	from1, from2   Point // shifts, in global space
	base1s, base2s Point
	to1, to2       Point
	base12s        Point
	base1, base2   Point // anchors, in local space
	base12         Point
}

type adimNames struct {
	ref1, org1, ref2, org2, pos string
}

// NewADim returns an angular dimension measuring the angle between the
// directions org1->ref1 and org2->ref2, with the baseline arc passing
// through pos.
func NewADim(ref1, org1, ref2, org2, pos Point) *ADim {
	return &ADim{
		Dim:           newDim(ref1, ref2, pos),
		Org1:          org1,
		Org2:          org2,
		HasExtension1: true,
		HasExtension2: true,
	}
}

// NewADimFromModel returns an angular dimension whose points are resolved
// by name against model. The dimension registers itself as a dependency:
// whenever the model signals a change, the cached geometry is invalidated
// and the names are resolved again on the next use.
func NewADimFromModel(model *Model, ref1, org1, ref2, org2, pos string) (*ADim, error) {
	a := NewADim(Point{}, Point{}, Point{}, Point{}, Point{})
	a.model = model
	a.names = adimNames{ref1: ref1, org1: org1, ref2: ref2, org2: org2, pos: pos}
	if err := a.resolve(); err != nil {
		return nil, err
	}
	model.AddDependency(a.Invalidate)
	return a, nil
}

// Invalidate drops the cached geometry so it is solved again on the next
// use.
func (a *ADim) Invalidate() {
	a.arranged = false
}

// resolve refreshes the reference points from the bound model, if any.
func (a *ADim) resolve() error {
	if a.model == nil {
		return nil
	}
	for _, ref := range []struct {
		name string
		p    *Point
	}{
		{a.names.ref1, &a.Ref1},
		{a.names.org1, &a.Org1},
		{a.names.ref2, &a.Ref2},
		{a.names.org2, &a.Org2},
		{a.names.pos, &a.Pos},
	} {
		p, ok := a.model.NamedPair(ref.name)
		if !ok {
			return fmt.Errorf("model has no pair named %q", ref.name)
		}
		*ref.p = p
	}
	return nil
}

// solve computes the angles, shifts and baseline anchors. The center of
// the measured angle is the intersection of the two directions and the
// baseline arc passes at the distance of Pos from it.
func (a *ADim) solve() error {
	if a.arranged {
		return nil
	}
	if err := a.resolve(); err != nil {
		return err
	}

	v1 := a.Ref1.Sub(a.Org1)
	v2 := a.Ref2.Sub(a.Org2)
	factor := v1.PerpDot(v2)
	if equal(factor, 0.0) {
		return ErrParallelLines
	}
	factor = ((a.Ref1.Y-a.Ref2.Y)*v2.X - (a.Ref1.X-a.Ref2.X)*v2.Y) / factor
	center := a.Ref1.Add(v1.Mul(factor))
	distance := center.Sub(a.Pos).Length()

	a.angle1 = v1.Angle()
	a.angle2 = v2.Angle()
	for a.angle2 < a.angle1 {
		a.angle2 += 2.0 * math.Pi
	}
	vmid := PointFromAngle((a.angle1+a.angle2)/2.0, 1.0)

	style := a.style()
	spacing := a.Level * style.BaselineSpacing
	a.from1 = v1.Norm(style.FromOffset)
	a.base1s = v1.Norm(spacing)
	a.to1 = v1.Norm(style.ToOffset)
	a.from2 = v2.Norm(style.FromOffset)
	a.base2s = v2.Norm(spacing)
	a.to2 = v2.Norm(style.ToOffset)
	a.base12s = vmid.Mul(spacing)

	a.base1 = v1.Norm(distance).Add(center)
	a.base2 = v2.Norm(distance).Add(center)
	a.base12 = vmid.Mul(distance).Add(center)

	a.arranged = true
	return nil
}

// Measure returns the measured angle in degrees.
func (a *ADim) Measure() (float64, error) {
	if err := a.solve(); err != nil {
		return 0.0, err
	}
	return (a.angle2 - a.angle1) * 180.0 / math.Pi, nil
}

// Quote returns the quote text: the explicit value if set, otherwise the
// measured angle formatted with the style's number format.
func (a *ADim) Quote() (string, error) {
	if a.Value != "" {
		return a.Value, nil
	}
	measure, err := a.Measure()
	if err != nil {
		return "", err
	}
	return a.quote(measure), nil
}

// QuoteMap returns the matrix placing the quote text on the middle of the
// baseline arc, rotated to follow it.
func (a *ADim) QuoteMap() (Matrix, error) {
	if err := a.solve(); err != nil {
		return Matrix{}, err
	}
	anchor := a.Local.Dot(a.base12).Add(a.base12s)
	angle := a.QuoteAngle((a.angle1+a.angle2)/2.0 + math.Pi/2.0)
	return a.quoteMap(anchor, angle), nil
}

// Trail returns the drawable path of the dimension: the baseline arc from
// base1 through base12 to base2 and, when enabled, the two extension lines
// connecting the reference points to it. Anchor points go through the
// local matrix, style shifts are applied in global space afterwards.
func (a *ADim) Trail() (*Path, error) {
	if err := a.solve(); err != nil {
		return nil, err
	}

	ref1 := a.Local.Dot(a.Ref1)
	ref2 := a.Local.Dot(a.Ref2)
	base1 := a.Local.Dot(a.base1).Add(a.base1s)
	base12 := a.Local.Dot(a.base12).Add(a.base12s)
	base2 := a.Local.Dot(a.base2).Add(a.base2s)

	trail := &Path{}
	trail.MoveTo(base1.X, base1.Y)
	trail.ArcTo(base12.X, base12.Y, base2.X, base2.Y)
	if a.HasExtension1 {
		from := ref1.Add(a.from1)
		to := base1.Add(a.to1)
		trail.MoveTo(from.X, from.Y)
		trail.LineTo(to.X, to.Y)
	}
	if a.HasExtension2 {
		from := ref2.Add(a.from2)
		to := base2.Add(a.to2)
		trail.MoveTo(from.X, from.Y)
		trail.LineTo(to.X, to.Y)
	}
	return trail, nil
}

// MarkerMaps returns the matrices placing the two markers on the ends of
// the baseline arc, pointing towards each other along the arc.
func (a *ADim) MarkerMaps() (Matrix, Matrix, error) {
	trail, err := a.Trail()
	if err != nil {
		return Matrix{}, Matrix{}, err
	}
	segs, _ := trail.Segments()
	arc := segs[0].Prims[0]
	size := a.style().MarkerSize
	m1 := MarkerMap(arc.PosAt(0.0), arc.DirAt(0.0).Angle(), size)
	m2 := MarkerMap(arc.PosAt(1.0), arc.DirAt(1.0).Angle()+math.Pi, size)
	return m1, m2, nil
}
