package drafting

import (
	"fmt"
	"math"
)

// Dim holds the state shared by all dimension entities: the two reference
// points being measured, the position the baseline passes through, the
// stacking level, an optional explicit quote text and the style and local
// matrix used to lay out the drawable trail. Reference points live in
// local (model) space, style metrics in global (paper) space.
//
// Fields may be changed directly; call the entity's Invalidate method
// afterwards so the cached geometry is solved again on the next use.
type Dim struct {
	Ref1, Ref2 Point
	Pos        Point
	Level      float64
	Value      string // explicit quote text, overrides the measured value
	Style      *DimStyle
	Local      Matrix
}

func newDim(ref1, ref2, pos Point) Dim {
	return Dim{Ref1: ref1, Ref2: ref2, Pos: pos, Level: 1.0, Local: Identity}
}

var stockDimStyle = DefaultDimStyle()

func (d *Dim) style() *DimStyle {
	if d.Style != nil {
		return d.Style
	}
	return stockDimStyle
}

// canonAngle returns the angle theta normalized in (-PI,PI].
func canonAngle(theta float64) float64 {
	theta = angleNorm(theta)
	if math.Pi < theta {
		theta -= 2.0 * math.Pi
	}
	return theta
}

// QuoteAngle returns the angle the quote text should be rotated by when
// its baseline runs along angle. Angles that would put the text upside
// down are flipped by PI so it stays readable.
func (d *Dim) QuoteAngle(angle float64) float64 {
	angle = canonAngle(angle)
	if math.Pi/3.0 < angle || angle <= -3.0*math.Pi/4.0 {
		angle = canonAngle(angle + math.Pi)
	}
	return angle
}

// quote formats the measured value with the style's number format, unless
// an explicit value was set.
func (d *Dim) quote(measure float64) string {
	if d.Value != "" {
		return d.Value
	}
	return fmt.Sprintf(d.style().NumberFormat, measure)
}

// quoteMap builds the matrix placing the quote text: anchored on p,
// rotated by angle and displaced by the style's quote shift in the rotated
// frame.
func (d *Dim) quoteMap(p Point, angle float64) Matrix {
	shift := d.style().QuoteShift
	return Identity.Translate(p.X, p.Y).Rotate(angle).Translate(shift.X, shift.Y)
}
