package life

import "testing"

func TestInsertContains(t *testing.T) {
	set := NewCellSet()
	coords := [][2]int{{0, 0}, {-1, -1}, {5, -7}, {1 << 20, -(1 << 20)}, {-1, 1}}
	for _, c := range coords {
		set.Insert(c[0], c[1])
		if !set.Contains(c[0], c[1]) {
			t.Fatalf("Contains(%d,%d) = false after Insert", c[0], c[1])
		}
	}
	if set.Count() != len(coords) {
		t.Fatalf("Count() = %d, want %d", set.Count(), len(coords))
	}
	if set.Contains(2, 3) {
		t.Fatal("Contains reports a cell that was never inserted")
	}
}

func TestInsertIdempotent(t *testing.T) {
	set := NewCellSet()
	set.Insert(3, 4)
	set.Insert(3, 4)
	set.Insert(3, 4)
	if set.Count() != 1 {
		t.Fatalf("Count() = %d after duplicate inserts, want 1", set.Count())
	}
}

func TestGrowthPreservesMembership(t *testing.T) {
	set := NewCellSet()
	startCap := set.Capacity()

	// Enough cells to force several doublings past the 2048 initial table.
	const side = 80
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			set.Insert(x-side/2, y-side/2)
		}
	}

	if set.Count() != side*side {
		t.Fatalf("Count() = %d, want %d", set.Count(), side*side)
	}
	if set.Capacity() <= startCap {
		t.Fatalf("capacity %d did not grow from %d", set.Capacity(), startCap)
	}
	if set.Capacity()&(set.Capacity()-1) != 0 {
		t.Fatalf("capacity %d is not a power of two", set.Capacity())
	}
	if set.Count()*2 > set.Capacity() {
		t.Fatalf("load factor above one half: %d cells in %d buckets", set.Count(), set.Capacity())
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if !set.Contains(x-side/2, y-side/2) {
				t.Fatalf("cell (%d,%d) lost during growth", x-side/2, y-side/2)
			}
		}
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	set := NewCellSet()
	for i := 0; i < 3000; i++ {
		set.Insert(i, -i)
	}
	grown := set.Capacity()

	set.Clear()
	if set.Count() != 0 {
		t.Fatalf("Count() = %d after Clear, want 0", set.Count())
	}
	if set.Capacity() != grown {
		t.Fatalf("Clear changed capacity from %d to %d", grown, set.Capacity())
	}
	if set.Contains(1, -1) {
		t.Fatal("Contains reports a cell after Clear")
	}

	set.Insert(9, 9)
	if !set.Contains(9, 9) || set.Count() != 1 {
		t.Fatal("set unusable after Clear")
	}
}

func TestIteratorVisitsEachCellOnce(t *testing.T) {
	set := NewCellSet()
	want := map[Cell]bool{}
	for i := 0; i < 500; i++ {
		c := Cell{X: i % 37, Y: i / 37}
		set.Insert(c.X, c.Y)
		want[c] = true
	}

	seen := map[Cell]int{}
	it := set.Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		seen[c]++
	}

	if len(seen) != len(want) {
		t.Fatalf("iterator yielded %d distinct cells, want %d", len(seen), len(want))
	}
	for c, n := range seen {
		if !want[c] {
			t.Fatalf("iterator yielded cell %v that was never inserted", c)
		}
		if n != 1 {
			t.Fatalf("iterator yielded cell %v %d times", c, n)
		}
	}

	// A finished iterator stays exhausted.
	if _, ok := it.Next(); ok {
		t.Fatal("exhausted iterator produced another cell")
	}
}
