package problems

import (
	"errors"
	"math"
	"testing"

	"github.com/rollingthunder/linconst/ode"
	"github.com/rollingthunder/linconst/ode/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	list := Presets()
	require.Len(t, list, len(presets))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name(), list[i].Name())
	}
}

func TestDefaultPreset(t *testing.T) {
	p, err := Preset(DefaultPreset)
	require.NoError(t, err)

	sol, err := p.Solve()
	require.NoError(t, err)
	// a=4, b=3: roots -1 and -3
	assert.Equal(t, ode.Distinct, sol.Kind())
	assert.InDelta(t, 13.0, sol.Y(0), 1e-9)
	assert.InDelta(t, 11.5, sol.Derivative(0), 1e-9)
}

func TestPresetsSolve(t *testing.T) {
	for _, p := range Presets() {
		sol, err := p.Solve()
		if p.Name() == "half-wave" {
			assert.ErrorIs(t, err, linear.ErrUnsolvableBoundary)
			continue
		}
		require.NoError(t, err, p.Description())
		assert.False(t, math.IsNaN(sol.Y(1)), p.Name())
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := Preset("nope")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestSolveValidates(t *testing.T) {
	_, err := NewInitial("nan", ode.InitialValue{A: math.NaN()}).Solve()
	assert.ErrorIs(t, err, ode.ErrNonFinite)

	_, err = NewBoundary("x1", ode.BoundaryValue{A: 1, B: 1}).Solve()
	assert.ErrorIs(t, err, ode.ErrZeroBoundaryPoint)
}
