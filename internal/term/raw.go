// Package term drives the simulation from an interactive terminal: raw-mode
// input, an ANSI renderer and the cooperative tick loop that ties them to the
// engine.
package term

import (
	xterm "golang.org/x/term"
)

// enterRaw switches the descriptor into raw mode and returns the function
// that restores the previous state. The restore function may be called more
// than once; only the first call has an effect.
func enterRaw(fd int) (func(), error) {
	prev, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	var done bool
	return func() {
		if done {
			return
		}
		done = true
		xterm.Restore(fd, prev)
	}, nil
}

// windowSize returns the usable cell area of the terminal, reserving the
// status rows at the bottom. Falls back to 80x24 when the size query fails.
func windowSize(fd int) (rows, cols int) {
	w, h, err := xterm.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	if h > statusRows {
		h -= statusRows
	}
	return h, w
}
