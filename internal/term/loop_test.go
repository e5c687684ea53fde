package term

import (
	"testing"
	"time"

	"sparselife/pkg/life"
)

func TestApplyCommands(t *testing.T) {
	l := NewLoop(life.NewEngine(), 200*time.Millisecond)

	l.apply(CmdTogglePause)
	if !l.paused {
		t.Fatal("pause toggle did not pause")
	}
	l.apply(CmdTogglePause)
	if l.paused {
		t.Fatal("pause toggle did not resume")
	}

	l.apply(CmdStep)
	if !l.singleStep {
		t.Fatal("step command did not arm single-step")
	}

	l.apply(CmdZoomOut)
	l.apply(CmdZoomOut)
	if l.vp.Scale != 4 {
		t.Fatalf("Scale = %d after two zoom-outs, want 4", l.vp.Scale)
	}

	// Panning moves by whole screen cells at the current scale.
	l.apply(CmdPanRight)
	l.apply(CmdPanDown)
	if l.vp.CenterX != 4 || l.vp.CenterY != 4 {
		t.Fatalf("center = (%d,%d), want (4,4)", l.vp.CenterX, l.vp.CenterY)
	}

	msg := l.apply(CmdResetView)
	if msg == "" {
		t.Fatal("view reset produced no info message")
	}
	if l.vp.CenterX != 0 || l.vp.CenterY != 0 || l.vp.Scale != 1 {
		t.Fatal("view reset did not return to origin at scale 1")
	}
}
