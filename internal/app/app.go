//go:build ebiten

package app

import (
	"image/color"

	"sparselife/internal/render"
	"sparselife/internal/ui"
	"sparselife/pkg/life"
	"sparselife/pkg/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the sparse engine and a viewport to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	vp      *view.Viewport
	painter *render.GridPainter
	overlay *ui.Overlay

	rows, cols int
	pixel      int
	frame      []uint8

	onColor  color.Color
	offColor color.Color

	paused   bool
	tickOnce bool
}

// New constructs a Game presenting a rows-by-cols window onto the world.
func New(engine *life.Engine, rows, cols, pixel int) *Game {
	return &Game{
		engine:   engine,
		vp:       view.New(),
		painter:  render.NewGridPainter(cols, rows),
		overlay:  ui.NewOverlay(),
		rows:     rows,
		cols:     cols,
		pixel:    pixel,
		frame:    make([]uint8, rows*cols),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles input and advances the simulation by at most one step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.vp.Reset()
	}
	g.handleView()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.engine.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleView() {
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.vp.Pan(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.vp.Pan(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.vp.Pan(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.vp.Pan(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.vp.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.vp.ZoomOut()
	}
}

// Draw samples the viewport into the frame buffer and blits it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.vp.Sample(g.engine.Live(), g.rows, g.cols, g.frame)
	g.painter.Blit(screen, g.frame, g.onColor, g.offColor, g.pixel)
	if g.overlay != nil {
		g.overlay.Draw(screen, ui.Status{
			Generation: g.engine.Generation(),
			Population: g.engine.Population(),
			Scale:      g.vp.Scale,
			CenterX:    g.vp.CenterX,
			CenterY:    g.vp.CenterY,
			Paused:     g.paused,
		})
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cols * g.pixel, g.rows * g.pixel
}
