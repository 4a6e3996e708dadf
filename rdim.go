package drafting

import (
	"fmt"
	"math"
)

// RDim is a radial dimension: it measures the radius of the circle centered
// on Ref1 passing through Ref2. The baseline runs radially from the
// distance of Pos towards the point on the circle, on the side of the
// center Pos is closest to.
//
// The geometry is solved lazily and cached; changing any input requires a
// call to Invalidate.
type RDim struct {
	Dim

	model *Model
	names rdimNames

	arranged bool
	radius   float64
	angle    float64
	base     Point // baseline start anchor, in local space
	shift    Point // baseline shift, in global space
}

type rdimNames struct {
	center, radius, pos string
}

// NewRDim returns a radial dimension measuring the radius of the circle
// centered on center passing through radius, with the quote at the
// distance of pos.
func NewRDim(center, radius, pos Point) *RDim {
	return &RDim{Dim: newDim(center, radius, pos)}
}

// NewRDimFromModel returns a radial dimension whose points are resolved by
// name against model. The dimension registers itself as a dependency:
// whenever the model signals a change, the cached geometry is invalidated
// and the names are resolved again on the next use.
func NewRDimFromModel(model *Model, center, radius, pos string) (*RDim, error) {
	r := NewRDim(Point{}, Point{}, Point{})
	r.model = model
	r.names = rdimNames{center: center, radius: radius, pos: pos}
	if err := r.resolve(); err != nil {
		return nil, err
	}
	model.AddDependency(r.Invalidate)
	return r, nil
}

// Invalidate drops the cached geometry so it is solved again on the next
// use.
func (r *RDim) Invalidate() {
	r.arranged = false
}

// resolve refreshes the reference points from the bound model, if any.
func (r *RDim) resolve() error {
	if r.model == nil {
		return nil
	}
	for _, ref := range []struct {
		name string
		p    *Point
	}{
		{r.names.center, &r.Ref1},
		{r.names.radius, &r.Ref2},
		{r.names.pos, &r.Pos},
	} {
		p, ok := r.model.NamedPair(ref.name)
		if !ok {
			return fmt.Errorf("model has no pair named %q", ref.name)
		}
		*ref.p = p
	}
	return nil
}

// solve computes the radius and the baseline anchor: the radial vector is
// flipped towards the side of the circle Pos is closest to, the baseline
// starts at the distance of Pos from the center and the style shift pushes
// it outwards by the stacking level.
func (r *RDim) solve() error {
	if r.arranged {
		return nil
	}
	if err := r.resolve(); err != nil {
		return err
	}

	vector := r.Ref2.Sub(r.Ref1)
	d1 := r.Pos.Sub(r.Ref1)
	d2 := r.Pos.Sub(r.Ref2)
	if d1.Dot(d1) < d2.Dot(d2) {
		vector = vector.Neg()
	}

	r.radius = vector.Length()
	r.angle = r.QuoteAngle(vector.Angle())
	r.base = r.Ref1.Add(vector.Norm(d1.Length()))
	r.shift = vector.Norm(r.Level * r.style().BaselineSpacing)

	r.arranged = true
	return nil
}

// Measure returns the measured radius.
func (r *RDim) Measure() (float64, error) {
	if err := r.solve(); err != nil {
		return 0.0, err
	}
	return r.radius, nil
}

// Quote returns the quote text: the explicit value if set, otherwise the
// measured radius formatted with the style's number format and prefixed
// with "R".
func (r *RDim) Quote() (string, error) {
	if r.Value != "" {
		return r.Value, nil
	}
	measure, err := r.Measure()
	if err != nil {
		return "", err
	}
	return "R " + r.quote(measure), nil
}

// baseline returns the baseline ends in global space: from the shifted
// base anchor to the point on the circle.
func (r *RDim) baseline() (Point, Point, error) {
	if err := r.solve(); err != nil {
		return Point{}, Point{}, err
	}
	return r.Local.Dot(r.base).Add(r.shift), r.Local.Dot(r.Ref2), nil
}

// QuoteMap returns the matrix placing the quote text on the baseline
// start, rotated to follow the radial direction.
func (r *RDim) QuoteMap() (Matrix, error) {
	b1, _, err := r.baseline()
	if err != nil {
		return Matrix{}, err
	}
	return r.quoteMap(b1, r.angle), nil
}

// Trail returns the drawable path of the dimension: the radial baseline
// from the shifted base anchor to the point on the circle. The anchors go
// through the local matrix, the style shift is applied in global space
// afterwards.
func (r *RDim) Trail() (*Path, error) {
	b1, b2, err := r.baseline()
	if err != nil {
		return nil, err
	}
	trail := &Path{}
	trail.MoveTo(b1.X, b1.Y)
	trail.LineTo(b2.X, b2.Y)
	return trail, nil
}

// MarkerMap returns the matrix placing the single marker on the circle end
// of the baseline, pointing outwards along it.
func (r *RDim) MarkerMap() (Matrix, error) {
	b1, b2, err := r.baseline()
	if err != nil {
		return Matrix{}, err
	}
	return MarkerMap(b2, b2.Sub(b1).Angle()+math.Pi, r.style().MarkerSize), nil
}
