package ode

import "github.com/rollingthunder/linconst/util"

// Regime names the root family of the characteristic equation.
type Regime int

const (
	// Repeated: one real double root, discriminant within Epsilon of zero.
	Repeated Regime = iota
	// Distinct: two distinct real roots.
	Distinct
	// Complex: a complex conjugate pair p ± iq.
	Complex
)

func (r Regime) String() string {
	switch r {
	case Repeated:
		return "repeated"
	case Distinct:
		return "distinct"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Discriminant returns a^2 - 4b.
func Discriminant(a, b float64) float64 {
	return a*a - 4.0*b
}

// Classify determines the regime using the fixed tolerance util.Epsilon.
// A discriminant with |a^2 - 4b| < 1e-10 is treated as exactly zero.
func Classify(a, b float64) Regime {
	return ClassifyWithin(a, b, util.Epsilon)
}

// ClassifyWithin is Classify with a caller supplied zero tolerance.
func ClassifyWithin(a, b, eps float64) Regime {
	delta := Discriminant(a, b)
	switch {
	case util.IsApproxZero(delta, eps):
		return Repeated
	case delta > 0:
		return Distinct
	default:
		return Complex
	}
}
