package peak

import "github.com/cwbudde/algo-nmr2d/grid"

func newGrid1D(data []float32) *grid.Grid {
	return grid.New([]int{len(data)}, data)
}
