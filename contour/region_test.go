package contour

import "testing"

func TestFullRegionCoversWholeGrid(t *testing.T) {
	r := fullRegion(4, 5)
	var rows []int
	r.forEachRange(5, func(row, start, end int) {
		rows = append(rows, row)
		if start != 0 || end != 4 {
			t.Fatalf("row %d range = [%d,%d), want [0,4)", row, start, end)
		}
	})
	if len(rows) != 3 {
		t.Fatalf("covered %d rows, want 3 (rows-1)", len(rows))
	}
}

func TestRegionStartEndRange(t *testing.T) {
	r := newRegion()
	r.update(1, 0, kindStartRange)
	r.update(4, 0, kindEndRange)

	var got []colRange
	r.forEachRange(10, func(row, start, end int) {
		got = append(got, colRange{start, end})
	})
	if len(got) != 1 || got[0] != (colRange{1, 6}) {
		t.Fatalf("ranges = %v, want [{1 6}]", got)
	}
}

func TestRegionNeitherOpensOnlyAtColumnZero(t *testing.T) {
	r := newRegion()
	r.update(3, 0, kindNeither) // not column 0: no-op
	if len(r.ranges) != 1 || len(r.ranges[0]) != 0 {
		t.Fatalf("expected row touched but no range opened, got %v", r.ranges)
	}

	r2 := newRegion()
	r2.update(0, 0, kindNeither)
	if len(r2.ranges[0]) != 1 || r2.ranges[0][0].Start != 0 {
		t.Fatalf("expected range opened at column 0, got %v", r2.ranges)
	}
}

func TestTrackerAdvanceSwapsAndClears(t *testing.T) {
	trk := newTracker(3, 3)
	trk.updateNew(0, 0, kindStartRange)
	trk.advance(3)

	if len(trk.old.rows) != 1 {
		t.Fatalf("old rows = %v, want 1 row carried from new", trk.old.rows)
	}
	if len(trk.new.rows) != 0 {
		t.Fatalf("new should be freshly empty after advance")
	}
}
