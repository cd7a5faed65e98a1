package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsApproxZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val, eps float64
		want     bool
	}{
		{"zero", 0, Epsilon, true},
		{"below", 9e-11, Epsilon, true},
		{"negative below", -9e-11, Epsilon, true},
		{"at tolerance", 1e-10, Epsilon, false},
		{"above", 1e-9, Epsilon, false},
		{"custom wide", 0.05, 0.1, true},
		{"zero tolerance", 0, 0, false},
		{"nan", math.NaN(), Epsilon, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsApproxZero(tc.val, tc.eps))
		})
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite())
	assert.True(t, IsFinite(1, -2, 0))
	assert.False(t, IsFinite(1, math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestMakeRectangular(t *testing.T) {
	rect := MakeRectangular(3, 2)
	require.Len(t, rect, 3)
	for _, row := range rect {
		require.Len(t, row, 2)
	}
	rect[0] = append(rect[0], 42)
	assert.Zero(t, rect[1][0], "rows must not alias on append")
}

func TestRandomInInterval(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInInterval(-3, 5)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.Less(t, v, 5.0)
	}
}
