package drafting

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleNorm(t *testing.T) {
	test.Float(t, angleNorm(0.0), 0.0)
	test.Float(t, angleNorm(1.0*math.Pi), 1.0*math.Pi)
	test.Float(t, angleNorm(1.5*math.Pi), 1.5*math.Pi)
	test.Float(t, angleNorm(2.0*math.Pi), 0.0)
	test.Float(t, angleNorm(2.5*math.Pi), 0.5*math.Pi)
	test.Float(t, angleNorm(-0.5*math.Pi), 1.5*math.Pi)
	test.Float(t, angleNorm(-2.5*math.Pi), 1.5*math.Pi)
}

func TestPoint(t *testing.T) {
	Epsilon = 0.01
	p := Point{3, 4}
	test.T(t, p.Neg(), Point{-3, -4})
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.T(t, p.Div(3.0), Point{1, 1.33})
	test.T(t, p.Rot90CW(), Point{4, -3})
	test.T(t, p.Rot90CCW(), Point{-4, 3})
	test.T(t, p.Rot(90*math.Pi/180.0, Point{}), p.Rot90CCW())
	test.T(t, p.Rot(90*math.Pi/180.0, p), p)
	test.Float(t, p.Dot(Point{3, 0}), 9.0)
	test.Float(t, p.PerpDot(Point{3, 0}), p.Rot90CCW().Dot(Point{3, 0}))
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Angle(), math.Atan2(4.0, 3.0))
	test.Float(t, p.AngleBetween(p.Rot90CCW()), 90.0*math.Pi/180.0)
	test.T(t, p.Norm(3.0), Point{1.8, 2.4})
	test.T(t, p.Norm(-3.0), Point{-1.8, -2.4})
	test.T(t, p.Norm(0.0), Point{0.0, 0.0})
	test.T(t, Point{}.Norm(1.0), Point{0.0, 0.0})
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.T(t, PointFromAngle(0.5*math.Pi, 2.0), Point{0.0, 2.0})
	test.That(t, p.Equals(Point{3, 4}))
	test.That(t, !p.IsZero())
	test.That(t, Point{}.IsZero())
	test.String(t, p.String(), "(3,4)")
	Epsilon = 1e-10
}

func TestMatrix(t *testing.T) {
	Epsilon = 1e-8
	p := Point{3, 4}
	test.T(t, Identity.Translate(2.0, 2.0).Dot(p), Point{5, 6})
	test.T(t, Identity.Scale(2.0, 2.0).Dot(p), Point{6, 8})
	test.T(t, Identity.Scale(1.0, -1.0).Dot(p), Point{3, -4})
	test.T(t, Identity.Rotate(0.5*math.Pi).Dot(p), p.Rot90CCW())
	test.T(t, Identity.RotateAt(0.5*math.Pi, 3.0, 4.0).Dot(p), p)
	test.T(t, Identity.Rotate(0.5*math.Pi).Inv().Dot(p.Rot90CCW()), p)
	test.T(t, Identity.Translate(2.0, 0.0).Rotate(0.5*math.Pi).Dot(p), Point{-2, 3})

	m := Identity.Translate(1.0, 2.0).Rotate(0.25*math.Pi).Scale(2.0, 3.0)
	test.T(t, m.Mul(m.Inv()), Identity)
	test.Float(t, Identity.Scale(2.0, 3.0).Det(), 6.0)
	Epsilon = 1e-10
}

func TestSolveQuadraticFormula(t *testing.T) {
	x1, x2 := solveQuadraticFormula(0.0, 0.0, 0.0)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 0.0, 1.0)
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 1.0, 1.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.0)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, -1.0)

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 1.0) // discriminant negative
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.25) // discriminant zero
	test.Float(t, x1, -0.5)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(2.0, -5.0, 2.0) // negative b, flip x1 and x2
	test.Float(t, x1, 0.5)
	test.Float(t, x2, 2.0)
}

func TestGaussLegendre(t *testing.T) {
	test.FloatDiff(t, gaussLegendre5(math.Log, 0.0, 1.0), -0.979001, 1e-6)
	test.FloatDiff(t, gaussLegendre7(math.Log, 0.0, 1.0), -0.988738, 1e-6)
}
