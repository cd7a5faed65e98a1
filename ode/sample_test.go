package ode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	points := Sample(EvaluatorFunc(math.Cos), DefaultSampleFrom, DefaultSampleStep, DefaultSampleCount)
	require.Len(t, points, 1000)

	assert.Equal(t, Point{X: 0, Y: 1}, points[0])
	last := points[len(points)-1]
	assert.InDelta(t, 9.99, last.X, 1e-12)
	assert.InDelta(t, math.Cos(9.99), last.Y, 1e-12)
}

func TestSampleEmpty(t *testing.T) {
	assert.Nil(t, Sample(EvaluatorFunc(math.Sin), 0, 1, 0))
	assert.Nil(t, Sample(EvaluatorFunc(math.Sin), 0, 1, -3))
}

func TestSplit(t *testing.T) {
	xs, ys := Split([]Point{{1, 2}, {3, 4}})
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}
