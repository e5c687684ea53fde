package term

import (
	"fmt"
	"io"
	"strings"

	"sparselife/pkg/view"
)

// statusRows is the number of terminal rows reserved below the world frame.
const statusRows = 4

const clearScreen = "\x1b[2J\x1b[H"

// Frame holds everything one render pass needs.
type Frame struct {
	Grid       view.Grid
	Viewport   *view.Viewport
	Generation uint64
	Population int
	Paused     bool
	DelayMS    int
	Info       string
}

// Screen renders frames of the world plus status lines to a writer. The
// writer is injected so tests can render into a buffer.
type Screen struct {
	out   io.Writer
	cells []uint8
}

// NewScreen returns a Screen writing to out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

// Render paints the frame into a rows-by-cols window followed by the status
// lines. One write hits the terminal per call.
func (s *Screen) Render(f Frame, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	if len(s.cells) < rows*cols {
		s.cells = make([]uint8, rows*cols)
	}
	f.Viewport.Sample(f.Grid, rows, cols, s.cells)

	var b strings.Builder
	b.Grow(rows*(cols+2) + 256)
	b.WriteString(clearScreen)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if s.cells[row*cols+col] != 0 {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("\r\n")
	}

	status := "running"
	if f.Paused {
		status = "paused"
	}
	fmt.Fprintf(&b, "Generation: %d | Live cells: %d | Speed: %d ms | Scale: %d | Center: (%d,%d)\r\n",
		f.Generation, f.Population, f.DelayMS, f.Viewport.Scale, f.Viewport.CenterX, f.Viewport.CenterY)
	fmt.Fprintf(&b, "Status: %s | Controls: q=quit p=pause/resume n=step w/a/s/d=pan +/-=zoom | r=reset to origin\r\n", status)
	fmt.Fprintf(&b, "Info: %s\r\n", f.Info)

	_, err := io.WriteString(s.out, b.String())
	return err
}
