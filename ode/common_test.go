package ode

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want Regime
	}{
		{"critical damping", 6, 9, Repeated},
		{"overdamped", -5, 6, Distinct},
		{"oscillator", 0, 1, Complex},
		{"zero", 0, 0, Repeated},
		{"negative b", 0, -1, Distinct},
		{"within tolerance", 2, 1 - 1e-12, Repeated},
		{"just outside tolerance", 2, 1 + 1e-9, Complex},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.a, tc.b))
		})
	}
}

func TestClassifyWithin(t *testing.T) {
	t.Parallel()

	// discriminant 0.04
	assert.Equal(t, Distinct, ClassifyWithin(2, 0.99, 1e-10))
	assert.Equal(t, Repeated, ClassifyWithin(2, 0.99, 0.1))
	assert.Equal(t, Complex, ClassifyWithin(2, 1.01, 1e-3))
	assert.Equal(t, Distinct, ClassifyWithin(0, -1, 0))
}

func TestDiscriminant(t *testing.T) {
	assert.Equal(t, 1.0, Discriminant(-5, 6))
	assert.Equal(t, -4.0, Discriminant(0, 1))
	assert.Equal(t, 0.0, Discriminant(6, 9))
}

func TestRegimeString(t *testing.T) {
	assert.Equal(t, "repeated", Repeated.String())
	assert.Equal(t, "distinct", Distinct.String())
	assert.Equal(t, "complex", Complex.String())
	assert.Equal(t, "unknown", Regime(42).String())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, InitialValue{A: 1, B: 2, Y0: 3, DY0: 4}.Validate())
	err := InitialValue{A: math.NaN()}.Validate()
	assert.True(t, errors.Is(err, ErrNonFinite))

	require.NoError(t, BoundaryValue{A: 1, B: 2, Y0: 3, Y1: 4, X1: 1}.Validate())
	assert.ErrorIs(t, BoundaryValue{X1: math.Inf(1)}.Validate(), ErrNonFinite)
	assert.ErrorIs(t, BoundaryValue{A: 1, X1: 0}.Validate(), ErrZeroBoundaryPoint)
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "y'' + 6y' + 9y = 0, y(0) = 2, y'(0) = 1",
		InitialValue{A: 6, B: 9, Y0: 2, DY0: 1}.Description())
	assert.Equal(t, "y'' + 0y' + 1y = 0, y(0) = 0, y(1.5) = 1",
		BoundaryValue{A: 0, B: 1, Y0: 0, Y1: 1, X1: 1.5}.Description())
}
