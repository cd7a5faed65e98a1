package linear

import (
	"errors"
	"fmt"
	"math"

	"github.com/rollingthunder/linconst/ode"
	"github.com/rollingthunder/linconst/util"
)

// ErrUnsolvableBoundary is returned when y(0) and y(x1) do not determine a unique solution.
var ErrUnsolvableBoundary = errors.New("linear: boundary condition has no unique solution")

// Affine describes y(x1) as a function of the unknown y'(0) while a, b and y(0) stay fixed:
//
//	y(x1) = Slope*y'(0) + Intercept
type Affine struct {
	Slope, Intercept float64
}

// At returns y(x1) for the initial slope dy0.
func (c Affine) At(dy0 float64) float64 {
	return c.Slope*dy0 + c.Intercept
}

// Solve returns the initial slope with At(dy0) == y1.
func (c Affine) Solve(y1 float64) (float64, error) {
	if c.Slope == 0 {
		return 0, ErrUnsolvableBoundary
	}
	dy0 := (y1 - c.Intercept) / c.Slope
	if !util.IsFinite(dy0) {
		return 0, ErrUnsolvableBoundary
	}
	return dy0, nil
}

// AffineAt returns the affine dependence of y(x1) on y'(0).
func AffineAt(a, b, y0, x1 float64) Affine {
	c, _ := affine(a, b, y0, x1)
	return c
}

// affine also reports whether x1 is a node of the sine part of a complex solution,
// where every y'(0) yields the same y(x1).
func affine(a, b, y0, x1 float64) (c Affine, nodal bool) {
	delta := ode.Discriminant(a, b)

	switch ode.Classify(a, b) {
	case ode.Repeated:
		r0 := -a / 2.0
		e := math.Exp(r0 * x1)
		return Affine{Slope: x1 * e, Intercept: y0 * e * (1.0 - x1*r0)}, false

	case ode.Distinct:
		r1, r2 := realRoots(a, delta)
		e1, e2 := math.Exp(r1*x1), math.Exp(r2*x1)
		return Affine{
			Slope:     (e1 - e2) / (r1 - r2),
			Intercept: y0 / (r1 - r2) * (r1*e2 - r2*e1),
		}, false

	default:
		p, q := complexRoots(a, delta)
		sin, cos := math.Sincos(q * x1)
		e := math.Exp(p * x1)
		// nodes sit at q*x1 = k*pi, k != 0; near 0 the slope is about x1
		k := math.Round(q * x1 / math.Pi)
		return Affine{
			Slope:     sin * e / q,
			Intercept: y0 * e * (cos - sin*p/q),
		}, k != 0 && util.IsApproxZero(sin, util.Epsilon)
	}
}

// FromBoundaryValue builds the solution with y(0) = p.Y0 and y(p.X1) = p.Y1
// by solving for y'(0) and delegating to FromInitialValue.
func FromBoundaryValue(p ode.BoundaryValue) (Solution, error) {
	if p.X1 == 0 {
		return nil, ode.ErrZeroBoundaryPoint
	}

	c, nodal := affine(p.A, p.B, p.Y0, p.X1)
	if nodal {
		return nil, fmt.Errorf("%w: x1 = %g is a node for %s", ErrUnsolvableBoundary, p.X1, p.Description())
	}
	dy0, err := c.Solve(p.Y1)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, p.Description())
	}

	return FromInitialValue(ode.InitialValue{A: p.A, B: p.B, Y0: p.Y0, DY0: dy0}), nil
}
