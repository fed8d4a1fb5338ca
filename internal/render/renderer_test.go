package render

import (
	"strings"
	"testing"

	"slot_reel/internal/config"
	"slot_reel/internal/game"
	"slot_reel/internal/reel"

	"github.com/gdamore/tcell/v2"
)

var assets = []config.SymbolAsset{
	{ID: 0, Glyph: "A", Color: "red"},
	{ID: 1, Glyph: "B", Color: "green"},
	{ID: 2, Glyph: "7", Color: "yellow"},
	{ID: 5, Glyph: "$", Color: "blue"},
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func restingView() game.View {
	return game.View{
		Slots: []reel.Slot{
			{Y: 0, Symbol: 1},
			{Y: 100, Symbol: 2},
			{Y: 200, Symbol: 2},
			{Y: 300, Symbol: 2},
			{Y: 400, Symbol: 5},
		},
		SlotHeight: 100,
		Visible:    4,
		State:      reel.Idle,
		Available:  true,
		Balance:    "120.00",
		Win:        "30.00",
		Highlights: []int{0, 1, 2},
	}
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestGlyphsLookup(t *testing.T) {
	g := NewGlyphs(assets)

	r, style := g.Lookup(2)
	fg, _, _ := style.Decompose()
	if r != '7' || fg != tcell.GetColor("yellow") {
		t.Errorf("Unexpected glyph %q fg %v", r, fg)
	}

	if r, _ := g.Lookup(42); r != unknownGlyph {
		t.Errorf("Unknown symbol must fall back, got %q", r)
	}
}

func TestSlotRow(t *testing.T) {
	cases := map[float64]int{0: -2, 100: 1, 200: 4, 300: 7, 400: 10, 150: 3}
	for y, want := range cases {
		if got := SlotRow(y, 100); got != want {
			t.Errorf("SlotRow(%v) = %d, want %d", y, got, want)
		}
	}
}

func TestDrawRestingReel(t *testing.T) {
	screen := newScreen(t)
	NewRenderer(screen, NewGlyphs(assets)).Draw(restingView())

	x := originX + reelWidth/2
	want := []rune{'7', '7', '7', '$'}
	for k, w := range want {
		y := originY + SlotRow(float64(k+1)*100, 100)
		r, _, style, _ := screen.GetContent(x, y)
		if r != w {
			t.Errorf("Position %d: expected %q, got %q", k, w, r)
		}
		_, bg, _ := style.Decompose()
		highlighted := k < 3
		if (bg == tcell.ColorOlive) != highlighted {
			t.Errorf("Position %d: highlight mismatch, bg %v", k, bg)
		}
	}

	// Запасной слот над окном не рисуется
	for y := 0; y < originY; y++ {
		if strings.ContainsRune(rowText(screen, y), 'B') {
			t.Error("Spare slot must stay hidden")
		}
	}

	status := originY + 4*rowsPerSlot + 2
	if !strings.Contains(rowText(screen, status), "120.00") {
		t.Errorf("Expected balance in %q", rowText(screen, status))
	}
	if !strings.Contains(rowText(screen, status+1), "30.00") {
		t.Errorf("Expected win in %q", rowText(screen, status+1))
	}
	if !strings.Contains(rowText(screen, status+3), "spin") {
		t.Errorf("Expected spin hint in %q", rowText(screen, status+3))
	}
}

func TestDrawSpinningReel(t *testing.T) {
	screen := newScreen(t)
	v := restingView()
	v.State = reel.Scrolling
	v.Available = false
	v.Message = "spin failed: timeout"
	for i := range v.Slots {
		v.Slots[i].Blur = 25
	}
	NewRenderer(screen, NewGlyphs(assets)).Draw(v)

	x := originX + reelWidth/2
	y := originY + SlotRow(100, 100)
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, attrs := style.Decompose()
	if attrs&tcell.AttrDim == 0 {
		t.Error("Blurred symbol must be dimmed")
	}
	if bg == tcell.ColorOlive {
		t.Error("Highlights are hidden while spinning")
	}
	if r, _, _, _ := screen.GetContent(x, y-1); r != '┊' {
		t.Errorf("Expected blur trail above the symbol, got %q", r)
	}

	status := originY + 4*rowsPerSlot + 2
	if !strings.Contains(rowText(screen, status+3), "stop") {
		t.Errorf("Expected stop hint in %q", rowText(screen, status+3))
	}
	if !strings.Contains(rowText(screen, status+4), "timeout") {
		t.Errorf("Expected message in %q", rowText(screen, status+4))
	}
}
