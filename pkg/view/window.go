package view

// Grid is the read-only view of a cell population that sampling needs.
// life.CellSet satisfies it.
type Grid interface {
	Contains(x, y int) bool
}

// Sample fills dst with a row-major rows-by-cols frame of the world as seen
// through the viewport. A screen cell is 1 when ANY world cell in its
// Scale-by-Scale block is live: zoomed-out views show presence, never
// density. dst must hold at least rows*cols bytes.
func (v *Viewport) Sample(g Grid, rows, cols int, dst []uint8) {
	if rows <= 0 || cols <= 0 || len(dst) < rows*cols {
		return
	}
	x0, y0 := v.Origin(rows, cols)
	for row := 0; row < rows; row++ {
		oy := y0 + row*v.Scale
		for col := 0; col < cols; col++ {
			ox := x0 + col*v.Scale
			var live uint8
			if v.blockAlive(g, ox, oy) {
				live = 1
			}
			dst[row*cols+col] = live
		}
	}
}

func (v *Viewport) blockAlive(g Grid, x0, y0 int) bool {
	for dy := 0; dy < v.Scale; dy++ {
		for dx := 0; dx < v.Scale; dx++ {
			if g.Contains(x0+dx, y0+dy) {
				return true
			}
		}
	}
	return false
}
