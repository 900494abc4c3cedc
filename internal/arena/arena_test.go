package arena

import "testing"

func TestAllocGrowsBlocks(t *testing.T) {
	a := New[int](4)

	var ids []int
	for i := 0; i < 10; i++ {
		id, v := a.Alloc()
		*v = i * 10
		ids = append(ids, id)
	}

	if a.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", a.Len())
	}
	for i, id := range ids {
		if got := *a.At(id); got != i*10 {
			t.Fatalf("At(%d) = %d, want %d", id, got, i*10)
		}
	}
}

func TestResetReusesBlocksAndZeroes(t *testing.T) {
	a := New[int](4)

	id, v := a.Alloc()
	*v = 42
	if id != 0 {
		t.Fatalf("id = %d, want 0", id)
	}

	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", a.Len())
	}

	id2, v2 := a.Alloc()
	if id2 != 0 {
		t.Fatalf("id2 = %d, want 0", id2)
	}
	if *v2 != 0 {
		t.Fatalf("reused slot not zeroed: got %d", *v2)
	}
}

func TestAllocAcrossMultipleBlocks(t *testing.T) {
	a := New[struct{ X, Y float32 }](2)

	for i := 0; i < 7; i++ {
		id, v := a.Alloc()
		v.X = float32(i)
		v.Y = float32(i) * 2
		if got := a.At(id); got.X != float32(i) || got.Y != float32(i)*2 {
			t.Fatalf("id %d: got %+v", id, got)
		}
	}
}
