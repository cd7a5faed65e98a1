// Package linear computes closed-form solutions of y'' + a*y' + b*y = 0
// for initial-value and two-point boundary-value conditions.
package linear

import (
	"fmt"
	"math"

	"github.com/rollingthunder/linconst/ode"
)

// Solution is one of Repeated, Distinct or Complex.
// The set is closed: no other package can add a variant.
type Solution interface {
	ode.Evaluator
	// Derivative returns y'(x).
	Derivative(x float64) float64
	Kind() ode.Regime
	// Roots returns the roots of the characteristic equation,
	// the one with the larger real part (or positive imaginary part) first.
	Roots() (r1, r2 complex128)
	String() string

	solution()
}

// Repeated is y(x) = (Alpha*x + Beta) * e^(R0*x).
type Repeated struct {
	R0, Alpha, Beta float64
}

// Distinct is y(x) = Alpha*e^(R1*x) + Beta*e^(R2*x) with R1 > R2.
type Distinct struct {
	R1, R2, Alpha, Beta float64
}

// Complex is y(x) = e^(P*x) * (Alpha*cos(Q*x) + Beta*sin(Q*x)), roots P ± iQ, Q > 0.
type Complex struct {
	P, Q, Alpha, Beta float64
}

func (Repeated) solution() {}
func (Distinct) solution() {}
func (Complex) solution()  {}

// Evaluate returns y(x) for any variant.
func Evaluate(s Solution, x float64) float64 {
	switch s := s.(type) {
	case Repeated:
		return (s.Alpha*x + s.Beta) * math.Exp(s.R0*x)
	case Distinct:
		return s.Alpha*math.Exp(s.R1*x) + s.Beta*math.Exp(s.R2*x)
	case Complex:
		return math.Exp(s.P*x) * (s.Alpha*math.Cos(s.Q*x) + s.Beta*math.Sin(s.Q*x))
	}
	panic(fmt.Sprintf("linear: unknown solution %T", s))
}

// Differentiate returns y'(x) for any variant.
func Differentiate(s Solution, x float64) float64 {
	switch s := s.(type) {
	case Repeated:
		return math.Exp(s.R0*x) * (s.Alpha + s.R0*(s.Alpha*x+s.Beta))
	case Distinct:
		return s.Alpha*s.R1*math.Exp(s.R1*x) + s.Beta*s.R2*math.Exp(s.R2*x)
	case Complex:
		sin, cos := math.Sincos(s.Q * x)
		return math.Exp(s.P*x) * ((s.Alpha*s.P+s.Beta*s.Q)*cos + (s.Beta*s.P-s.Alpha*s.Q)*sin)
	}
	panic(fmt.Sprintf("linear: unknown solution %T", s))
}

func (s Repeated) Y(x float64) float64 { return Evaluate(s, x) }
func (s Distinct) Y(x float64) float64 { return Evaluate(s, x) }
func (s Complex) Y(x float64) float64  { return Evaluate(s, x) }

func (s Repeated) Derivative(x float64) float64 { return Differentiate(s, x) }
func (s Distinct) Derivative(x float64) float64 { return Differentiate(s, x) }
func (s Complex) Derivative(x float64) float64  { return Differentiate(s, x) }

func (Repeated) Kind() ode.Regime { return ode.Repeated }
func (Distinct) Kind() ode.Regime { return ode.Distinct }
func (Complex) Kind() ode.Regime  { return ode.Complex }

func (s Repeated) Roots() (complex128, complex128) {
	return complex(s.R0, 0), complex(s.R0, 0)
}

func (s Distinct) Roots() (complex128, complex128) {
	return complex(s.R1, 0), complex(s.R2, 0)
}

func (s Complex) Roots() (complex128, complex128) {
	return complex(s.P, s.Q), complex(s.P, -s.Q)
}

func (s Repeated) String() string {
	return fmt.Sprintf("y(x) = (%g·x + %g)·e^(%g·x)", s.Alpha, s.Beta, s.R0)
}

func (s Distinct) String() string {
	return fmt.Sprintf("y(x) = %g·e^(%g·x) + %g·e^(%g·x)", s.Alpha, s.R1, s.Beta, s.R2)
}

func (s Complex) String() string {
	return fmt.Sprintf("y(x) = e^(%g·x)·(%g·cos(%g·x) + %g·sin(%g·x))", s.P, s.Alpha, s.Q, s.Beta, s.Q)
}

// Coefficients returns the variant's numbers by name, for reports.
func Coefficients(s Solution) map[string]float64 {
	switch s := s.(type) {
	case Repeated:
		return map[string]float64{"r0": s.R0, "alpha": s.Alpha, "beta": s.Beta}
	case Distinct:
		return map[string]float64{"r1": s.R1, "r2": s.R2, "alpha": s.Alpha, "beta": s.Beta}
	case Complex:
		return map[string]float64{"p": s.P, "q": s.Q, "alpha": s.Alpha, "beta": s.Beta}
	}
	return nil
}
