package core

import "time"

// FixedStep paces simulation updates at a steady per-generation delay. The
// driver loop polls faster than the delay so input stays responsive; this
// accumulator decides which polls actually advance the world.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller that fires once per delay.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetDelay(delay)
	fs.accumulator = fs.step
	return fs
}

// SetDelay changes the interval between steps. It is safe to call from the
// driver loop.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = time.Millisecond
	}
	f.step = delay
}

// ShouldStep reports whether enough time has elapsed for one step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
