package contour

// rangeKind tags an update_new_range call with the geometric event that
// produced it (spec.md §3 "Active region").
type rangeKind int

const (
	// kindNeither is a row-touch at column 0: it opens a range there only
	// if the row has not already started one this level.
	kindNeither rangeKind = iota
	// kindStartRange opens a new range at the given column.
	kindStartRange
	// kindEndRange closes the most recently opened range, two columns past
	// the column that triggered it; the range's start is left where
	// kindStartRange put it.
	kindEndRange
)

// colRange is a half-open column interval [Start, End) within one row.
// End == openEnd means the range has not yet been closed.
type colRange struct {
	Start, End int
}

const openEnd = -1

// region holds the column ranges, per row, known or suspected to contain a
// contour crossing (spec.md §3 "Active region": "a list of row indices;
// per-row count of column ranges; per-row-and-range start/end column").
type region struct {
	rows   []int
	ranges [][]colRange

	// rowIndex maps a row number to its position in rows/ranges while a
	// region is being built, so repeated touches to the same row don't
	// create duplicate entries.
	rowIndex map[int]int
}

func newRegion() *region {
	return &region{rowIndex: make(map[int]int)}
}

// fullRegion returns the bootstrap region covering every cell-anchor row
// (0..rows-2) with the grid's full column range (spec.md §4.3: "Bootstrapped
// as the full grid" for level 0's first pass).
func fullRegion(rows, cols int) *region {
	r := newRegion()
	for row := 0; row < rows-1; row++ {
		idx := r.ensureRow(row)
		r.ranges[idx] = []colRange{{Start: 0, End: cols - 1}}
	}
	return r
}

func (r *region) ensureRow(row int) int {
	if idx, ok := r.rowIndex[row]; ok {
		return idx
	}
	idx := len(r.rows)
	r.rowIndex[row] = idx
	r.rows = append(r.rows, row)
	r.ranges = append(r.ranges, nil)
	return idx
}

// update applies one event produced while scanning cell column x of row y.
func (r *region) update(x, y int, kind rangeKind) {
	idx := r.ensureRow(y)
	switch kind {
	case kindStartRange:
		r.ranges[idx] = append(r.ranges[idx], colRange{Start: x, End: openEnd})
	case kindEndRange:
		n := len(r.ranges[idx])
		if n > 0 && r.ranges[idx][n-1].End == openEnd {
			r.ranges[idx][n-1].End = x + 2
		}
	case kindNeither:
		if len(r.ranges[idx]) == 0 && x == 0 {
			r.ranges[idx] = append(r.ranges[idx], colRange{Start: 0, End: openEnd})
		}
	}
}

// closeOpenRanges closes any range left open at the end of a level's scan,
// setting its end to cols-1 (one past the last cell-anchor column).
func (r *region) closeOpenRanges(cols int) {
	for i, row := range r.ranges {
		n := len(row)
		if n > 0 && row[n-1].End == openEnd {
			r.ranges[i][n-1].End = cols - 1
		}
	}
}

// forEachRange walks every (row, range) pair, clamping ranges to
// [0, cols-2] (the valid cell-anchor column range).
func (r *region) forEachRange(cols int, fn func(row, start, end int)) {
	maxCol := cols - 1
	for i, row := range r.rows {
		for _, rg := range r.ranges[i] {
			start, end := rg.Start, rg.End
			if start < 0 {
				start = 0
			}
			if end > maxCol || end == openEnd {
				end = maxCol
			}
			if start < end {
				fn(row, start, end)
			}
		}
	}
}

// tracker owns the old (this level's scan plan) and new (next level's scan
// plan, under construction) regions, and swaps them between level passes.
type tracker struct {
	old, new *region
	rows     int
}

func newTracker(rows, cols int) *tracker {
	return &tracker{old: fullRegion(rows, cols), new: newRegion(), rows: rows}
}

func (t *tracker) updateNew(x, y int, kind rangeKind) {
	t.new.update(x, y, kind)
}

// advance closes the in-progress new region and swaps it into old for the
// next level pass, per spec.md §4.3 "swap_old_new".
func (t *tracker) advance(cols int) {
	t.new.closeOpenRanges(cols)
	t.old, t.new = t.new, newRegion()
}
