package term

import "io"

// Command enumerates the actions a key press can request from the loop.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdTogglePause
	CmdStep
	CmdPanLeft
	CmdPanRight
	CmdPanUp
	CmdPanDown
	CmdZoomIn
	CmdZoomOut
	CmdResetView
)

// decodeKey maps a raw input byte onto a command. Unknown bytes are CmdNone.
func decodeKey(ch byte) Command {
	switch ch {
	case 'q':
		return CmdQuit
	case 'p':
		return CmdTogglePause
	case 'n':
		return CmdStep
	case 'w':
		return CmdPanUp
	case 's':
		return CmdPanDown
	case 'a':
		return CmdPanLeft
	case 'd':
		return CmdPanRight
	case '+', '=':
		return CmdZoomIn
	case '-':
		return CmdZoomOut
	case 'r':
		return CmdResetView
	}
	return CmdNone
}

// readKeys decodes bytes from r into commands on out until the reader fails,
// then closes out. It runs on its own goroutine; the loop drains the channel
// without blocking, so a full channel drops keystrokes rather than stalling
// the reader.
func readKeys(r io.Reader, out chan<- Command) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if cmd := decodeKey(buf[0]); cmd != CmdNone {
				select {
				case out <- cmd:
				default:
				}
			}
		}
		if err != nil {
			close(out)
			return
		}
	}
}
