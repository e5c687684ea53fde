package life

// Engine owns the live cell set and a monotonically increasing generation
// counter. It is single-threaded: callers must not touch the live set while
// Step runs.
type Engine struct {
	live       *CellSet
	generation uint64
}

// NewEngine returns an engine with an empty world at generation 0.
func NewEngine() *Engine {
	return &Engine{live: NewCellSet()}
}

// Live exposes the current generation's cell set. Renderers read it between
// steps; only the engine mutates it.
func (e *Engine) Live() *CellSet { return e.live }

// Generation returns the number of steps taken since the last seed.
func (e *Engine) Generation() uint64 { return e.generation }

// Population returns the current live cell count.
func (e *Engine) Population() int { return e.live.Count() }

// Seed replaces the world with the provided cells and resets the generation
// counter. A nil slice seeds an empty world.
func (e *Engine) Seed(cells []Cell) {
	e.live.Clear()
	e.generation = 0
	for _, c := range cells {
		e.live.Insert(c.X, c.Y)
	}
}

// Step advances the world by one generation. It tallies the Moore
// neighborhood of every live cell, builds the next generation into a fresh
// set, then swaps it in, so a partially computed generation is never
// observable and dead regions cost nothing.
func (e *Engine) Step() {
	counts := newNeighborCounter()
	it := e.live.Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts.increment(c.X+dx, c.Y+dy)
			}
		}
	}

	next := newCellSet(e.live.Capacity())
	for i := range counts.entries {
		entry := &counts.entries[i]
		if nextAlive(entry.count, e.live.Contains(entry.cell.X, entry.cell.Y)) {
			next.Insert(entry.cell.X, entry.cell.Y)
		}
	}

	e.live = next
	e.generation++
}

// nextAlive applies the birth/survival rule: three neighbors always produce a
// live cell, two preserve an existing one.
func nextAlive(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
