package drafting

import "math"

// LDim is a linear dimension: it measures the distance between its two
// reference points projected onto the baseline, whose orientation is set
// by the direction of the extension lines. The baseline passes through the
// projections of Pos onto each extension line.
//
// The geometry is solved lazily and cached; changing any input requires a
// call to Invalidate.
type LDim struct {
	Dim

	// Direction is the inclination of the extension lines in radians; the
	// baseline runs perpendicular to it.
	Direction float64

	HasExtension1, HasExtension2 bool

	// Outside places the markers outside the extension lines, extending
	// the baseline beyond them. Used when the quote does not fit between
	// the extension lines.
	Outside bool

	arranged   bool
	pos1, pos2 Point // baseline ends, in local space
	from, to   Point // shifts, in global space
	marker     Point
}

// DirRight is the direction of a vertical extension line, giving a
// horizontal baseline. DirUp gives a vertical baseline.
const (
	DirRight = 0.0
	DirUp    = math.Pi / 2.0
)

// NewLDim returns a linear dimension measuring the distance between ref1
// and ref2 along the baseline through pos, with extension lines running
// along direction.
func NewLDim(ref1, ref2, pos Point, direction float64) *LDim {
	return &LDim{
		Dim:           newDim(ref1, ref2, pos),
		Direction:     direction,
		HasExtension1: true,
		HasExtension2: true,
	}
}

// Invalidate drops the cached geometry so it is solved again on the next
// use.
func (l *LDim) Invalidate() {
	l.arranged = false
}

// solve projects Pos onto the extension line of each reference point to
// get the baseline ends, and derives the style shifts rotated along the
// direction.
func (l *LDim) solve() {
	if l.arranged {
		return
	}

	ext := PointFromAngle(l.Direction, 1.0)
	baseline := ext.Rot90CCW()
	d := ext.Y*baseline.X - ext.X*baseline.Y
	k := ((l.Pos.Y-l.Ref1.Y)*baseline.X - (l.Pos.X-l.Ref1.X)*baseline.Y) / d
	l.pos1 = l.Ref1.Add(ext.Mul(k))
	k = ((l.Pos.Y-l.Ref2.Y)*baseline.X - (l.Pos.X-l.Ref2.X)*baseline.Y) / d
	l.pos2 = l.Ref2.Add(ext.Mul(k))

	style := l.style()
	l.from = PointFromAngle(l.Direction, style.FromOffset)
	l.to = PointFromAngle(l.Direction, style.ToOffset)
	l.marker = PointFromAngle(l.Direction, l.Level*style.BaselineSpacing)

	l.arranged = true
}

// Measure returns the measured distance.
func (l *LDim) Measure() float64 {
	l.solve()
	return l.pos2.Sub(l.pos1).Length()
}

// Quote returns the quote text: the explicit value if set, otherwise the
// measured distance formatted with the style's number format.
func (l *LDim) Quote() string {
	return l.quote(l.Measure())
}

// baseline returns the baseline ends in global space.
func (l *LDim) baseline() (Point, Point) {
	l.solve()
	b1 := l.Local.Dot(l.pos1).Add(l.marker)
	b2 := l.Local.Dot(l.pos2).Add(l.marker)
	return b1, b2
}

// QuoteMap returns the matrix placing the quote text on the middle of the
// baseline, rotated to follow it.
func (l *LDim) QuoteMap() Matrix {
	b1, b2 := l.baseline()
	angle := l.QuoteAngle(l.Direction + math.Pi/2.0)
	return l.quoteMap(b1.Interpolate(b2, 0.5), angle)
}

// Trail returns the drawable path of the dimension: the baseline, the
// overrun lines past the extension lines when Outside is set, and the
// extension lines connecting the reference points to the baseline when
// enabled. Anchor points go through the local matrix, style shifts are
// applied in global space afterwards.
func (l *LDim) Trail() *Path {
	b1, b2 := l.baseline()

	trail := &Path{}
	trail.MoveTo(b1.X, b1.Y)
	trail.LineTo(b2.X, b2.Y)
	if l.Outside {
		over := b2.Sub(b1).Norm(l.style().beyond())
		out1 := b1.Sub(over)
		out2 := b2.Add(over)
		trail.MoveTo(b1.X, b1.Y)
		trail.LineTo(out1.X, out1.Y)
		trail.MoveTo(out2.X, out2.Y)
		trail.LineTo(b2.X, b2.Y)
	}
	if l.HasExtension1 {
		from := l.Local.Dot(l.Ref1).Add(l.from)
		to := b1.Add(l.to)
		trail.MoveTo(from.X, from.Y)
		trail.LineTo(to.X, to.Y)
	}
	if l.HasExtension2 {
		from := l.Local.Dot(l.Ref2).Add(l.from)
		to := b2.Add(l.to)
		trail.MoveTo(from.X, from.Y)
		trail.LineTo(to.X, to.Y)
	}
	return trail
}

// MarkerMaps returns the matrices placing the two markers on the baseline
// ends, pointing towards each other, or away from each other when Outside
// is set.
func (l *LDim) MarkerMaps() (Matrix, Matrix) {
	b1, b2 := l.baseline()
	size := l.style().MarkerSize
	angle := b2.Sub(b1).Angle()
	if l.Outside {
		return MarkerMap(b1, angle+math.Pi, size), MarkerMap(b2, angle, size)
	}
	return MarkerMap(b1, angle, size), MarkerMap(b2, angle+math.Pi, size)
}
