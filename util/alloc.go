package util

// MakeRectangular returns a rows x cols matrix backed by one contiguous slice.
func MakeRectangular(rows, cols uint) (rect [][]float64) {
	arr := make([]float64, rows*cols)
	rect = make([][]float64, rows)
	for i := range rect {
		rect[i] = arr[:cols:cols]
		arr = arr[cols:]
	}
	return
}
