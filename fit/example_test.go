package fit_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nmr2d/fit"
	"github.com/cwbudde/algo-nmr2d/grid"
)

func ExampleFitRegion() {
	const height, cy, cx, w = 80.0, 3.0, 3.0, 2.0
	const fourLn2 = 4 * 0.6931471805599453

	size := 7
	data := make([]float32, size*size)
	g := grid.New([]int{size, size}, data)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dy, dx := float64(y)-cy, float64(x)-cx
			v := height * math.Exp(-fourLn2*dy*dy/(w*w)) * math.Exp(-fourLn2*dx*dx/(w*w))
			g.Set(float32(v), y, x)
		}
	}

	result, err := fit.FitRegion(g, fit.Gaussian, []int{0, 0}, []int{size, size}, [][]float64{{3, 3}}, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("height=%.0f\n", result.Params[0].Height)

	// Output:
	// height=80
}
