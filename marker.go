package drafting

import "math"

// Arrow returns the outline of an arrowhead marker with the given opening
// angle: a closed triangle of unit length with its tip at the origin and
// its base towards positive x. Scale and place it with MarkerMap.
func Arrow(angle float64) *Path {
	sin, cos := math.Sincos(angle / 2.0)
	p := &Path{}
	p.MoveTo(0.0, 0.0)
	p.LineTo(cos, sin)
	p.LineTo(cos, -sin)
	p.Close()
	return p
}

// DefaultArrow returns an arrowhead with the stock opening angle of 30
// degrees.
func DefaultArrow() *Path {
	return Arrow(math.Pi / 6.0)
}

// Dot returns a circle marker of unit radius centered on the origin.
func Dot() *Path {
	p := &Path{}
	p.MoveTo(1.0, 0.0)
	p.ArcTo(-1.0, 0.0, 1.0, 0.0)
	return p
}

// MarkerMap returns the matrix that scales a unit marker by size and
// places it on p pointing along the direction theta.
func MarkerMap(p Point, theta, size float64) Matrix {
	return Identity.Translate(p.X, p.Y).Rotate(theta).Scale(size, size)
}
