package fit

// paramsPerPeak is the flat-vector block size for one peak in N dimensions:
// 1 height + N position + N linewidth.
func paramsPerPeak(ndims int) int {
	return 1 + 2*ndims
}

// pack flattens K peaks of N dims each into a parameter vector of length
// K*(1+2N), height/position.../linewidth... per peak block in order.
func pack(peaks []PeakParams) []float64 {
	if len(peaks) == 0 {
		return nil
	}
	n := len(peaks[0].Position)
	a := make([]float64, len(peaks)*paramsPerPeak(n))
	off := 0
	for _, p := range peaks {
		a[off] = p.Height
		copy(a[off+1:off+1+n], p.Position)
		copy(a[off+1+n:off+1+2*n], p.Linewidth)
		off += paramsPerPeak(n)
	}
	return a
}

// unpack is pack's inverse, given the dimensionality n.
func unpack(a []float64, n int) []PeakParams {
	block := paramsPerPeak(n)
	k := len(a) / block
	peaks := make([]PeakParams, k)
	for i := 0; i < k; i++ {
		off := i * block
		peaks[i] = PeakParams{
			Height:    a[off],
			Position:  append([]float64(nil), a[off+1:off+1+n]...),
			Linewidth: append([]float64(nil), a[off+1+n:off+1+2*n]...),
		}
	}
	return peaks
}

// modelAt evaluates the composite sum-of-peaks model at x, returning the
// total model value and the full-length derivative vector (spec.md §4.9
// "Multi-peak model: sum of K independent shapes; derivatives are non-zero
// only for that peak's own parameter block").
func modelAt(shape Shape, peaks []PeakParams, x []float64, first, last []int) (float64, []float64) {
	n := len(x)
	block := paramsPerPeak(n)
	grad := make([]float64, len(peaks)*block)

	for _, p := range peaks {
		if outOfRegion(p, first, last) {
			// Any peak straying out of bounds forces this sample's whole
			// model value to the penalty constant, with every derivative
			// zero, repelling the LM step back toward the region without
			// an explicit constraint (spec.md §4.9).
			return outOfRegionPenalty, grad
		}
	}

	total := 0.0
	for k, p := range peaks {
		off := k * block
		y, d := shape.eval(p, x)
		total += y
		grad[off] = d.dHeight
		copy(grad[off+1:off+1+n], d.dPosition)
		copy(grad[off+1+n:off+1+2*n], d.dLinewidth)
	}
	return total, grad
}
