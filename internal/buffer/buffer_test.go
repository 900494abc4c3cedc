package buffer

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float32, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}
	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrows(t *testing.T) {
	buf := make([]int32, 2, 2)

	out := EnsureLen(buf, 10)
	if len(out) != 10 {
		t.Fatalf("len = %d, want 10", len(out))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float32, 2)

	n := CopyInto(dst, []float32{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("dst = %v, want [1 2]", dst)
	}
}
