// Package view maps a finite screen window onto the unbounded world grid.
package view

const (
	minScale = 1
	maxScale = 1024
)

// Viewport is a rectangular window over the world, described by a center
// point in world coordinates and an integer zoom scale. At scale s one screen
// cell covers an s-by-s block of world cells.
type Viewport struct {
	CenterX int
	CenterY int
	Scale   int
}

// New returns a viewport centered on the origin at scale 1.
func New() *Viewport {
	return &Viewport{Scale: minScale}
}

// Pan moves the center by whole screen cells: the world distance is dx*Scale
// and dy*Scale, so one pan step covers one cell of the current view
// regardless of zoom.
func (v *Viewport) Pan(dx, dy int) {
	v.CenterX += dx * v.Scale
	v.CenterY += dy * v.Scale
}

// ZoomIn halves the scale, bottoming out at 1.
func (v *Viewport) ZoomIn() {
	if v.Scale > minScale {
		v.Scale /= 2
	}
}

// ZoomOut doubles the scale, saturating at 1024.
func (v *Viewport) ZoomOut() {
	if v.Scale < maxScale {
		v.Scale *= 2
	}
}

// Reset recenters on the origin at scale 1.
func (v *Viewport) Reset() {
	v.CenterX = 0
	v.CenterY = 0
	v.Scale = minScale
}

// Origin returns the world coordinates of the top-left corner of a
// rows-by-cols window.
func (v *Viewport) Origin(rows, cols int) (int, int) {
	return v.CenterX - (cols/2)*v.Scale, v.CenterY - (rows/2)*v.Scale
}

// CellOrigin returns the world coordinates of the top-left corner of the
// block covered by screen cell (row, col) in a rows-by-cols window.
func (v *Viewport) CellOrigin(row, col, rows, cols int) (int, int) {
	x0, y0 := v.Origin(rows, cols)
	return x0 + col*v.Scale, y0 + row*v.Scale
}
