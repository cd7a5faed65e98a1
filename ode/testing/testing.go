package testing

import (
	"math"
	"testing"

	"github.com/rollingthunder/linconst/ode"
	"github.com/rollingthunder/linconst/util"
	"github.com/stretchr/testify/assert"
)

// Closed is the part of a closed-form solution the harness checks.
type Closed interface {
	ode.Evaluator
	Derivative(x float64) float64
	Kind() ode.Regime
}

type Solver struct {
	Name     string
	Initial  func(ode.InitialValue) Closed
	Boundary func(ode.BoundaryValue) (Closed, error)
}

var Regimes = []ode.Regime{ode.Repeated, ode.Distinct, ode.Complex}

const (
	coefMin, coefMax   = -3.0, 3.0
	valueMin, valueMax = -5.0, 5.0
	// keeps the discriminant well away from the repeated-root tolerance
	margin = 0.25
)

// RandomInitialValue draws a problem whose discriminant lies in the given regime.
func RandomInitialValue(regime ode.Regime) ode.InitialValue {
	a, b := randomCoefficients(regime)
	return ode.InitialValue{
		A:   a,
		B:   b,
		Y0:  util.RandomInInterval(valueMin, valueMax),
		DY0: util.RandomInInterval(valueMin, valueMax),
	}
}

// RandomBoundaryValue draws a boundary problem in the given regime with x1 in [0.5, 2)
// and x1 kept away from nodes of oscillating solutions.
func RandomBoundaryValue(regime ode.Regime) ode.BoundaryValue {
	for {
		a, b := randomCoefficients(regime)
		x1 := util.RandomInInterval(0.5, 2)
		if regime == ode.Complex {
			q := math.Sqrt(-ode.Discriminant(a, b)) / 2
			if math.Abs(math.Sin(q*x1)) < 1e-2 {
				continue
			}
		}
		return ode.BoundaryValue{
			A:  a,
			B:  b,
			Y0: util.RandomInInterval(valueMin, valueMax),
			Y1: util.RandomInInterval(valueMin, valueMax),
			X1: x1,
		}
	}
}

func randomCoefficients(regime ode.Regime) (a, b float64) {
	a = util.RandomInInterval(coefMin, coefMax)
	switch regime {
	case ode.Repeated:
		return a, a * a / 4
	case ode.Distinct:
		return a, (a*a - util.RandomInInterval(margin, 9)) / 4
	default:
		return a, (a*a + util.RandomInInterval(margin, 9)) / 4
	}
}

// CentralDifference approximates f'(x) by (f(x+h) - f(x-h)) / 2h.
func CentralDifference(f ode.Evaluator, x, h float64) float64 {
	return (f.Y(x+h) - f.Y(x-h)) / (2 * h)
}

// IntegrateRK4 integrates y'' = -a*y' - b*y from 0 to xEnd with the classical
// fourth order Runge-Kutta method using a fixed number of steps.
// It serves as an independent reference for the closed forms.
func IntegrateRK4(a, b, y0, dy0, xEnd float64, steps int) (y, dy float64) {
	f := func(y, dy float64) (float64, float64) {
		return dy, -a*dy - b*y
	}
	h := xEnd / float64(steps)
	y, dy = y0, dy0
	for i := 0; i < steps; i++ {
		k1y, k1d := f(y, dy)
		k2y, k2d := f(y+h/2*k1y, dy+h/2*k1d)
		k3y, k3d := f(y+h/2*k2y, dy+h/2*k2d)
		k4y, k4d := f(y+h*k3y, dy+h*k3d)
		y += h / 6 * (k1y + 2*k2y + 2*k3y + k4y)
		dy += h / 6 * (k1d + 2*k2d + 2*k3d + k4d)
	}
	return
}

func tolerance(want float64) float64 {
	return 1e-6 * math.Max(1, math.Abs(want))
}

// RunInitialValueTests checks, per regime, that the solution has the requested
// regime, reproduces y(0) and y'(0), and agrees with RK4 integration at x = 1.
func RunInitialValueTests(t *testing.T, s Solver, iterations int) {
	if testing.Verbose() {
		t.Logf("%s\tRegime\tA\tB\tY0\tDY0", s.Name)
	}

	for _, regime := range Regimes {
		for i := 0; i < iterations; i++ {
			p := RandomInitialValue(regime)
			sol := s.Initial(p)

			assert.Equal(t, regime, sol.Kind(), "regime of %s", p.Description())
			assert.InDelta(t, p.Y0, sol.Y(0), tolerance(p.Y0), "y(0) of %s", p.Description())
			assert.InDelta(t, p.DY0, sol.Derivative(0), tolerance(p.DY0), "y'(0) of %s", p.Description())
			assert.InDelta(t, p.DY0, CentralDifference(sol, 0, 1e-5), 1e-4*math.Max(1, math.Abs(p.DY0)),
				"finite difference y'(0) of %s", p.Description())

			y, dy := IntegrateRK4(p.A, p.B, p.Y0, p.DY0, 1, 2000)
			assert.InDelta(t, y, sol.Y(1), tolerance(y), "y(1) of %s", p.Description())
			assert.InDelta(t, dy, sol.Derivative(1), tolerance(dy), "y'(1) of %s", p.Description())

			if testing.Verbose() {
				t.Logf(" \t%s\t%.3f\t%.3f\t%.3f\t%.3f", regime, p.A, p.B, p.Y0, p.DY0)
			}
		}
	}
}

// RunBoundaryValueTests checks, per regime, that the solution meets both boundary values.
func RunBoundaryValueTests(t *testing.T, s Solver, iterations int) {
	for _, regime := range Regimes {
		for i := 0; i < iterations; i++ {
			p := RandomBoundaryValue(regime)
			sol, err := s.Boundary(p)
			if !assert.NoError(t, err, p.Description()) {
				continue
			}

			assert.Equal(t, regime, sol.Kind(), "regime of %s", p.Description())
			assert.InDelta(t, p.Y0, sol.Y(0), tolerance(p.Y0), "y(0) of %s", p.Description())
			assert.InDelta(t, p.Y1, sol.Y(p.X1), tolerance(p.Y1), "y(x1) of %s", p.Description())
		}
	}
}
