//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the status line in the top-left corner of the screen. The H
// key toggles it.
type Overlay struct {
	hidden bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update handles the overlay's key toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status text onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	if o == nil || o.hidden {
		return
	}
	line := fmt.Sprintf("gen %d  pop %d  scale %d  center (%d,%d)",
		st.Generation, st.Population, st.Scale, st.CenterX, st.CenterY)
	if st.Paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
