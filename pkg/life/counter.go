package life

// counterBuckets is the fixed bucket count of a neighbor counter. Unlike the
// cell set it never grows: the table lives for a single step, and chains are
// allowed to lengthen under unusually dense populations.
const counterBuckets = 4096

type countEntry struct {
	cell  Cell
	count int
	next  int32
}

// neighborCounter tallies live neighbors for the cells touched during one
// generation. Entries are created lazily on first increment and the whole
// table is discarded after the step.
type neighborCounter struct {
	buckets []int32
	entries []countEntry
}

func newNeighborCounter() *neighborCounter {
	c := &neighborCounter{buckets: make([]int32, counterBuckets)}
	for i := range c.buckets {
		c.buckets[i] = noEntry
	}
	return c
}

// increment adds one to the tally for (x, y), creating the entry if needed.
func (c *neighborCounter) increment(x, y int) {
	b := int(mix64(cellKey(x, y)) & uint64(len(c.buckets)-1))
	for i := c.buckets[b]; i != noEntry; i = c.entries[i].next {
		if c.entries[i].cell.X == x && c.entries[i].cell.Y == y {
			c.entries[i].count++
			return
		}
	}
	c.entries = append(c.entries, countEntry{cell: Cell{X: x, Y: y}, count: 1, next: c.buckets[b]})
	c.buckets[b] = int32(len(c.entries) - 1)
}
