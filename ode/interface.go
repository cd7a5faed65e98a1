// Package ode holds the problem types for second order linear equations
// with constant coefficients
//
//	y''(x) + a*y'(x) + b*y(x) = 0
//
// and the classification of their characteristic equation r^2 + a*r + b = 0.
package ode

import (
	"errors"
	"fmt"

	"github.com/rollingthunder/linconst/util"
)

var (
	// ErrNonFinite is returned by Validate when a coefficient or condition is NaN or ±Inf.
	ErrNonFinite = errors.New("ode: NaN or Inf in problem")

	// ErrZeroBoundaryPoint is returned when the second boundary point x1 is 0.
	ErrZeroBoundaryPoint = errors.New("ode: boundary point x1 must not be 0")
)

// InitialValue fixes y(0) = Y0 and y'(0) = DY0.
type InitialValue struct {
	A, B float64
	Y0   float64
	DY0  float64
}

// BoundaryValue fixes y(0) = Y0 and y(X1) = Y1.
type BoundaryValue struct {
	A, B float64
	Y0   float64
	Y1   float64
	X1   float64
}

// Validate rejects inputs the solver is not defined for.
// The solver itself never calls it.
func (p InitialValue) Validate() error {
	if !util.IsFinite(p.A, p.B, p.Y0, p.DY0) {
		return fmt.Errorf("%w: %v", ErrNonFinite, p)
	}
	return nil
}

func (p BoundaryValue) Validate() error {
	if !util.IsFinite(p.A, p.B, p.Y0, p.Y1, p.X1) {
		return fmt.Errorf("%w: %v", ErrNonFinite, p)
	}
	if p.X1 == 0 {
		return ErrZeroBoundaryPoint
	}
	return nil
}

// Description returns the equation and conditions in readable form.
func (p InitialValue) Description() string {
	return fmt.Sprintf("%s, y(0) = %g, y'(0) = %g", equation(p.A, p.B), p.Y0, p.DY0)
}

func (p BoundaryValue) Description() string {
	return fmt.Sprintf("%s, y(0) = %g, y(%g) = %g", equation(p.A, p.B), p.Y0, p.X1, p.Y1)
}

func equation(a, b float64) string {
	return fmt.Sprintf("y'' + %gy' + %gy = 0", a, b)
}

// Evaluator is anything that can be evaluated at x,
// typically a solution handed to a plotting or sampling front end.
type Evaluator interface {
	Y(x float64) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(x float64) float64

func (f EvaluatorFunc) Y(x float64) float64 { return f(x) }
