package ode

// Default sampling grid of the curve viewer: 1000 points, 0.01 apart, starting at 0.
const (
	DefaultSampleFrom  = 0.0
	DefaultSampleStep  = 0.01
	DefaultSampleCount = 1000
)

// Point is one sample (X, f(X)).
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Sample evaluates f at from + i*step for i in [0, count).
// A non-positive count yields no points.
func Sample(f Evaluator, from, step float64, count int) []Point {
	if count <= 0 {
		return nil
	}
	points := make([]Point, count)
	for i := range points {
		x := from + float64(i)*step
		points[i] = Point{X: x, Y: f.Y(x)}
	}
	return points
}

// Split returns the abscissae and ordinates of points as separate slices.
func Split(points []Point) (xs, ys []float64) {
	xs, ys = make([]float64, len(points)), make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return
}
