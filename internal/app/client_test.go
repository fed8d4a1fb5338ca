package app

import (
	"testing"

	"slot_reel/internal/config/env"
	"slot_reel/internal/reel"

	"github.com/gdamore/tcell/v2"
)

func TestReelParams(t *testing.T) {
	cfg, err := env.ParseReelConfig([]byte(`
reel:
  spin_speed: 12
  bounce: 1.3
`))
	if err != nil {
		t.Fatal(err)
	}

	p := reelParams(cfg)
	want := reel.DefaultParams()
	want.SpinSpeed = 12
	want.Bounce = 1.3
	if p != want {
		t.Errorf("Expected %+v, got %+v", want, p)
	}
}

func TestHandleEventQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	a := NewClientApp()
	quit := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quit {
		if a.handleEvent(screen, ev) {
			t.Errorf("Expected %v to quit", ev.Name())
		}
	}

	if !a.handleEvent(screen, tcell.NewEventResize(80, 24)) {
		t.Error("Resize must not quit")
	}
}
