package peak

import "testing"

func TestForEachCubeOffsetVisitsAllButCenter(t *testing.T) {
	count := 0
	forEachCubeOffset(2, func(off []int) bool {
		count++
		if off[0] == 0 && off[1] == 0 {
			t.Fatal("center offset must be skipped")
		}
		return true
	})
	if count != 8 {
		t.Fatalf("visited %d offsets, want 8 (3^2-1)", count)
	}
}

func TestForEachCubeOffsetShortCircuits(t *testing.T) {
	count := 0
	forEachCubeOffset(3, func(off []int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("visited %d offsets after a false return, want 1", count)
	}
}

func TestDropGateDisabledWhenFactorZero(t *testing.T) {
	data := []float32{100, 100, 100, 100, 100}
	g := newGrid1D(data)
	if !dropGate(g, []int{2}, 100, Criteria{SeekMaxima: true, DropFactor: 0}) {
		t.Fatal("expected drop gate to pass trivially when DropFactor is 0")
	}
}

// A walk that reaches the grid edge while staying non-increasing counts as
// satisfying the drop gate even if it never crosses the drop_value
// threshold, confirmed from
// original_source/.../peak_finding.py:drops_in_direction_2d/3d, which
// returns True when its loop exhausts the array without a violation.
func TestDropGatePassesWhenMonotonicToGridEdge(t *testing.T) {
	data := []float32{100, 100, 100, 100, 100}
	g := newGrid1D(data)
	if !dropGate(g, []int{2}, 100, Criteria{SeekMaxima: true, DropFactor: 0.5}) {
		t.Fatal("expected drop gate to pass: plateau never increases before the grid edge")
	}
}

func TestDropGateRejectsWhenValueRisesBeforeThreshold(t *testing.T) {
	data := []float32{100, 40, 20, 90, 10}
	g := newGrid1D(data)
	crit := Criteria{SeekMaxima: true, DropFactor: 0.9}
	if dropGate(g, []int{0}, 100, crit) {
		t.Fatal("expected drop gate to reject: value rises again before the drop threshold or grid edge")
	}
}
