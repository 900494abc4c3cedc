package contour

import "github.com/cwbudde/algo-nmr2d/grid"

// GL implements spec.md §6's "Contour GL interface": it contours one or
// more equal-shaped arrays at a set of positive and a set of negative
// levels, and packs the results into a single GL buffer with the positive
// pass's polylines (colored posColor) preceding the negative pass's
// (colored negColor) — regardless of how many arrays contributed to each.
//
// When flatten is true and more than one array is given, the arrays are
// first collapsed to one via Flatten (spec.md §4.6) before either pass
// runs; otherwise every array is contoured independently and its output
// concatenated in input order within its pass.
func GL(arrays []*grid.Grid, posLevels, negLevels []float32, posColor, negColor [4]float32, flatten bool) (Packed, error) {
	if len(arrays) == 0 {
		return Packed{}, ErrInvalidGrid
	}

	work := arrays
	if flatten && len(arrays) > 1 {
		flat, err := Flatten(arrays)
		if err != nil {
			return Packed{}, err
		}
		work = []*grid.Grid{flat}
	}

	var posSets, negSets []coloredPolylines
	for _, a := range work {
		posPolys, err := List(a, posLevels)
		if err != nil {
			return Packed{}, err
		}
		posSets = append(posSets, coloredPolylines{polylines: posPolys, color: posColor})

		negPolys, err := List(a, negLevels)
		if err != nil {
			return Packed{}, err
		}
		negSets = append(negSets, coloredPolylines{polylines: negPolys, color: negColor})
	}

	return packAll(append(posSets, negSets...)), nil
}
