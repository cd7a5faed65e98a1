package linear

import (
	"math"

	"github.com/rollingthunder/linconst/ode"
)

// FromInitialValue builds the solution with y(0) = p.Y0 and y'(0) = p.DY0.
// It is total over finite inputs.
func FromInitialValue(p ode.InitialValue) Solution {
	a, y0, dy0 := p.A, p.Y0, p.DY0
	delta := ode.Discriminant(p.A, p.B)

	switch ode.Classify(p.A, p.B) {
	case ode.Repeated:
		r0 := -a / 2.0
		return Repeated{R0: r0, Alpha: dy0 - y0*r0, Beta: y0}

	case ode.Distinct:
		r1, r2 := realRoots(a, delta)
		return Distinct{
			R1:    r1,
			R2:    r2,
			Alpha: (dy0 - r2*y0) / (r1 - r2),
			Beta:  (y0*r1 - dy0) / (r1 - r2),
		}

	default:
		re, im := complexRoots(a, delta)
		return Complex{P: re, Q: im, Alpha: y0, Beta: (dy0 - y0*re) / im}
	}
}

// realRoots returns r1 >= r2 for delta > 0.
func realRoots(a, delta float64) (r1, r2 float64) {
	sq := math.Sqrt(delta)
	return (-a + sq) / 2.0, (-a - sq) / 2.0
}

// complexRoots returns p and q > 0 of the roots p ± iq for delta < 0.
func complexRoots(a, delta float64) (p, q float64) {
	return -a / 2.0, math.Sqrt(math.Abs(delta)) / 2.0
}
