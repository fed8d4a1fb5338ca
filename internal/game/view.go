package game

import (
	"slot_reel/internal/reel"
)

// View снимок для рендера. Только геометрия и текст, без пикселей
type View struct {
	Slots      []reel.Slot
	SlotHeight float64
	Visible    int
	State      reel.State
	Available  bool
	Balance    string
	Win        string
	Highlights []int // Позиции видимых символов сверху вниз
	Message    string
}

func (g *Game) View() View {
	strip := g.reel.Strip()

	highlights := make([]int, len(g.highlights))
	copy(highlights, g.highlights)

	return View{
		Slots:      strip.Slots(),
		SlotHeight: strip.SlotHeight(),
		Visible:    strip.VisibleCount(),
		State:      g.reel.State(),
		Available:  g.control.Available(),
		Balance:    FormatMoney(g.balance),
		Win:        FormatMoney(g.lastWin),
		Highlights: highlights,
		Message:    g.message,
	}
}
