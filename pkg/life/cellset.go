// Package life implements a sparse, unbounded Conway's Game of Life: a hash
// set of live coordinates and an engine that advances it one generation at a
// time. Cost per generation is proportional to the live population, not to
// any simulated area.
package life

// Cell identifies a live grid location by its world coordinates. A cell has
// no state beyond the coordinates themselves; being alive is set membership.
type Cell struct {
	X, Y int
}

// initialCapacity is the bucket count of a fresh CellSet.
const initialCapacity = 2048

const noEntry = int32(-1)

type cellEntry struct {
	cell Cell
	next int32
}

// CellSet is a hash set of live cells. Entries live in a dense array and the
// bucket table chains into it by index, so growth rehashes link words without
// moving per-cell allocations. The bucket count is always a power of two.
type CellSet struct {
	buckets []int32
	entries []cellEntry
}

// NewCellSet returns an empty set at the initial capacity.
func NewCellSet() *CellSet {
	return newCellSet(initialCapacity)
}

func newCellSet(capacity int) *CellSet {
	if capacity < initialCapacity {
		capacity = initialCapacity
	}
	s := &CellSet{buckets: make([]int32, capacity)}
	for i := range s.buckets {
		s.buckets[i] = noEntry
	}
	return s
}

// mix64 is the murmur fmix64 finalizer. Any finalizer-quality mix would do;
// what matters is that lookup and rehash apply the same one.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// cellKey packs the two 32-bit coordinate halves into one 64-bit hash key.
func cellKey(x, y int) uint64 {
	return uint64(uint32(x))<<32 ^ uint64(uint32(y))
}

func (s *CellSet) bucketFor(x, y int) int {
	return int(mix64(cellKey(x, y)) & uint64(len(s.buckets)-1))
}

// Contains reports whether (x, y) is live.
func (s *CellSet) Contains(x, y int) bool {
	for i := s.buckets[s.bucketFor(x, y)]; i != noEntry; i = s.entries[i].next {
		if s.entries[i].cell.X == x && s.entries[i].cell.Y == y {
			return true
		}
	}
	return false
}

// Insert marks (x, y) live. Inserting an already-live cell is a no-op.
func (s *CellSet) Insert(x, y int) {
	if s.Contains(x, y) {
		return
	}
	if (len(s.entries)+1)*2 > len(s.buckets) {
		s.grow()
	}
	b := s.bucketFor(x, y)
	s.entries = append(s.entries, cellEntry{cell: Cell{X: x, Y: y}, next: s.buckets[b]})
	s.buckets[b] = int32(len(s.entries) - 1)
}

// grow doubles the bucket table and rehashes every entry. Growth is the only
// operation that changes capacity; the set never shrinks.
func (s *CellSet) grow() {
	buckets := make([]int32, len(s.buckets)*2)
	for i := range buckets {
		buckets[i] = noEntry
	}
	s.buckets = buckets
	for i := range s.entries {
		e := &s.entries[i]
		b := s.bucketFor(e.cell.X, e.cell.Y)
		e.next = s.buckets[b]
		s.buckets[b] = int32(i)
	}
}

// Clear removes every cell without shrinking the bucket table.
func (s *CellSet) Clear() {
	s.entries = s.entries[:0]
	for i := range s.buckets {
		s.buckets[i] = noEntry
	}
}

// Count returns the number of live cells.
func (s *CellSet) Count() int { return len(s.entries) }

// Capacity returns the current bucket count.
func (s *CellSet) Capacity() int { return len(s.buckets) }

// Cells returns a fresh slice of all live cells.
func (s *CellSet) Cells() []Cell {
	cells := make([]Cell, len(s.entries))
	for i := range s.entries {
		cells[i] = s.entries[i].cell
	}
	return cells
}

// Iterator walks the live cells of a set exactly once, in unspecified order.
// It is a snapshot cursor: request a new one for each pass.
type Iterator struct {
	entries []cellEntry
	pos     int
}

// Iter starts a single-pass iteration over the live cells.
func (s *CellSet) Iter() Iterator {
	return Iterator{entries: s.entries}
}

// Next returns the next live cell, or ok=false once the pass is exhausted.
func (it *Iterator) Next() (Cell, bool) {
	if it.pos >= len(it.entries) {
		return Cell{}, false
	}
	c := it.entries[it.pos].cell
	it.pos++
	return c, true
}
