package linear

import (
	"math"
	"testing"

	"github.com/rollingthunder/linconst/ode"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateMatchesMethods(t *testing.T) {
	t.Parallel()

	sols := []Solution{
		Repeated{R0: -1, Alpha: 2, Beta: 3},
		Distinct{R1: 1, R2: -2, Alpha: 0.5, Beta: -1},
		Complex{P: -0.5, Q: 2, Alpha: 1, Beta: 0.25},
	}
	for _, s := range sols {
		for _, x := range []float64{-1, 0, 0.3, 2} {
			assert.Equal(t, Evaluate(s, x), s.Y(x))
			assert.Equal(t, Differentiate(s, x), s.Derivative(x))
		}
	}
}

func TestDerivativeAgainstDifference(t *testing.T) {
	t.Parallel()

	sols := []Solution{
		Repeated{R0: -1, Alpha: 2, Beta: 3},
		Distinct{R1: 1, R2: -2, Alpha: 0.5, Beta: -1},
		Complex{P: -0.5, Q: 2, Alpha: 1, Beta: 0.25},
	}
	const h = 1e-6
	for _, s := range sols {
		for _, x := range []float64{-1, 0, 0.3, 2} {
			diff := (s.Y(x+h) - s.Y(x-h)) / (2 * h)
			assert.InDelta(t, diff, s.Derivative(x), 1e-6, "%s at %v", s, x)
		}
	}
}

func TestRoots(t *testing.T) {
	t.Parallel()

	r1, r2 := Repeated{R0: -3}.Roots()
	assert.Equal(t, complex(-3, 0), r1)
	assert.Equal(t, r1, r2)

	r1, r2 = Distinct{R1: 3, R2: 2}.Roots()
	assert.Equal(t, complex(3, 0), r1)
	assert.Equal(t, complex(2, 0), r2)

	r1, r2 = Complex{P: -1, Q: 2}.Roots()
	assert.Equal(t, complex(-1, 2), r1)
	assert.Equal(t, complex(-1, -2), r2)
}

func TestRootsSolveCharacteristic(t *testing.T) {
	t.Parallel()

	for _, p := range []ode.InitialValue{{A: 6, B: 9}, {A: -5, B: 6}, {A: 1, B: 5}} {
		r1, r2 := FromInitialValue(p).Roots()
		for _, r := range []complex128{r1, r2} {
			v := r*r + complex(p.A, 0)*r + complex(p.B, 0)
			assert.InDelta(t, 0, real(v), 1e-9)
			assert.InDelta(t, 0, imag(v), 1e-9)
		}
	}
}

func TestKindAndString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sol  Solution
		kind ode.Regime
		str  string
	}{
		{Repeated{R0: -3, Alpha: 7, Beta: 2}, ode.Repeated, "y(x) = (7·x + 2)·e^(-3·x)"},
		{Distinct{R1: 3, R2: 2, Alpha: -1, Beta: 2}, ode.Distinct, "y(x) = -1·e^(3·x) + 2·e^(2·x)"},
		{Complex{P: 0, Q: 1, Alpha: 1, Beta: 0}, ode.Complex, "y(x) = e^(0·x)·(1·cos(1·x) + 0·sin(1·x))"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.kind, tc.sol.Kind())
		assert.Equal(t, tc.str, tc.sol.String())
	}
}

func TestCoefficients(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]float64{"r0": -3, "alpha": 7, "beta": 2},
		Coefficients(Repeated{R0: -3, Alpha: 7, Beta: 2}))
	assert.Equal(t, map[string]float64{"p": 0, "q": 1, "alpha": 1, "beta": 0},
		Coefficients(Complex{Q: 1, Alpha: 1}))
	assert.Len(t, Coefficients(Distinct{}), 4)
}

func TestEvaluateNilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Evaluate(nil, 0) })
	assert.True(t, math.IsNaN(Complex{P: math.NaN(), Q: 1}.Y(1)))
}
