package term

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sparselife/internal/core"
	"sparselife/pkg/life"
	"sparselife/pkg/view"
)

// pollInterval is how often the loop drains input. It is finer than any
// sensible step delay so keys stay responsive at slow simulation speeds.
const pollInterval = 15 * time.Millisecond

// Loop drives the simulation from the terminal. Each tick runs strictly in
// order: drain input, at most one step (skipped while paused, forced exactly
// once when single-stepping), then one render pass.
type Loop struct {
	engine *life.Engine
	vp     *view.Viewport
	screen *Screen
	delay  time.Duration

	paused     bool
	singleStep bool
}

// NewLoop returns a loop stepping the engine once per delay, rendering to
// stdout.
func NewLoop(engine *life.Engine, delay time.Duration) *Loop {
	return &Loop{
		engine: engine,
		vp:     view.New(),
		screen: NewScreen(os.Stdout),
		delay:  delay,
	}
}

// Run switches the terminal into raw mode and ticks until the user quits or
// a termination signal arrives. The previous terminal state is restored on
// every exit path, and the screen is cleared afterwards.
func (l *Loop) Run() error {
	restore, err := enterRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() {
		restore()
		fmt.Fprint(os.Stdout, clearScreen)
	}()

	events := make(chan Command, 32)
	go readKeys(os.Stdin, events)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	stepTimer := core.NewFixedStep(l.delay)
	poll := time.NewTicker(pollInterval)
	defer poll.Stop()

	info := "Press q to quit, p to pause."
	if err := l.render(info); err != nil {
		return err
	}
	info = ""

	for {
		select {
		case <-sigs:
			return nil
		case <-poll.C:
		}

		changed := false
		for drained := false; !drained; {
			select {
			case cmd, ok := <-events:
				if !ok || cmd == CmdQuit {
					return nil
				}
				if msg := l.apply(cmd); msg != "" {
					info = msg
				}
				changed = true
			default:
				drained = true
			}
		}

		if l.singleStep {
			l.engine.Step()
			l.singleStep = false
			changed = true
		} else if !l.paused && stepTimer.ShouldStep() {
			l.engine.Step()
			changed = true
		}

		if changed {
			if err := l.render(info); err != nil {
				return err
			}
			info = ""
		}
	}
}

// apply mutates loop and viewport state for one command and returns an info
// message when the command warrants one.
func (l *Loop) apply(cmd Command) string {
	switch cmd {
	case CmdTogglePause:
		l.paused = !l.paused
	case CmdStep:
		l.singleStep = true
	case CmdPanUp:
		l.vp.Pan(0, -1)
	case CmdPanDown:
		l.vp.Pan(0, 1)
	case CmdPanLeft:
		l.vp.Pan(-1, 0)
	case CmdPanRight:
		l.vp.Pan(1, 0)
	case CmdZoomIn:
		l.vp.ZoomIn()
	case CmdZoomOut:
		l.vp.ZoomOut()
	case CmdResetView:
		l.vp.Reset()
		return "View reset to origin"
	}
	return ""
}

func (l *Loop) render(info string) error {
	rows, cols := windowSize(int(os.Stdout.Fd()))
	return l.screen.Render(Frame{
		Grid:       l.engine.Live(),
		Viewport:   l.vp,
		Generation: l.engine.Generation(),
		Population: l.engine.Population(),
		Paused:     l.paused,
		DelayMS:    int(l.delay / time.Millisecond),
		Info:       info,
	}, rows, cols)
}
