package render

import (
	"math"

	"slot_reel/internal/game"
	"slot_reel/internal/reel"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	rowsPerSlot = 3
	reelWidth   = 9

	originX = 2
	originY = 2

	// Размытие, с которого символ рисуется приглушённым и со шлейфом
	blurVisible = 1.0
	blurPerRow  = 10.0
)

var (
	frameStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle = tcell.StyleDefault.Background(tcell.ColorOlive)
	textStyle      = tcell.StyleDefault
	messageStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	hintStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer рисует снимок игры в терминал
type Renderer struct {
	screen tcell.Screen
	glyphs *Glyphs
}

func NewRenderer(screen tcell.Screen, glyphs *Glyphs) *Renderer {
	return &Renderer{screen: screen, glyphs: glyphs}
}

func (r *Renderer) Draw(v game.View) {
	r.screen.Clear()

	drawText(r.screen, originX, 0, "SLOT REEL", textStyle.Bold(true))

	height := v.Visible * rowsPerSlot
	r.drawFrame(height)
	if v.State == reel.Idle {
		r.drawHighlights(v.Highlights)
	}
	r.drawSlots(v, height)
	r.drawStatus(v, originY+height+2)

	r.screen.Show()
}

func (r *Renderer) drawFrame(height int) {
	left, right := originX-1, originX+reelWidth
	top, bottom := originY-1, originY+height

	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '─', nil, frameStyle)
		r.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, frameStyle)
		r.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, frameStyle)
	r.screen.SetContent(right, top, '┐', nil, frameStyle)
	r.screen.SetContent(left, bottom, '└', nil, frameStyle)
	r.screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func (r *Renderer) drawHighlights(positions []int) {
	for _, pos := range positions {
		for row := 0; row < rowsPerSlot; row++ {
			for x := 0; x < reelWidth; x++ {
				r.screen.SetContent(originX+x, originY+pos*rowsPerSlot+row, ' ', nil, highlightStyle)
			}
		}
	}
}

// drawSlots слот с нижней границей Y занимает [Y-h, Y], видимая область - [0, visible*h]
func (r *Renderer) drawSlots(v game.View, height int) {
	if v.SlotHeight <= 0 {
		return
	}
	x := originX + reelWidth/2

	for _, s := range v.Slots {
		row := SlotRow(s.Y, v.SlotHeight)
		if row < 0 || row >= height {
			continue
		}

		ch, style := r.glyphs.Lookup(s.Symbol)
		if s.Blur >= blurVisible {
			style = style.Dim(true)
			trail := int(math.Min(s.Blur/blurPerRow, rowsPerSlot-1))
			for i := 1; i <= trail && row-i >= 0; i++ {
				r.screen.SetContent(x, originY+row-i, '┊', nil, style)
			}
		}

		if bg := r.cellBackground(x, originY+row); bg != tcell.ColorDefault {
			style = style.Background(bg)
		}
		r.screen.SetContent(x, originY+row, ch, nil, style)
	}
}

func (r *Renderer) cellBackground(x, y int) tcell.Color {
	_, _, style, _ := r.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func (r *Renderer) drawStatus(v game.View, y int) {
	drawText(r.screen, originX-1, y, "Balance: "+v.Balance, textStyle)
	drawText(r.screen, originX-1, y+1, "Win:     "+v.Win, textStyle)

	hint := "[space] spin   [q] quit"
	if !v.Available {
		hint = "[space] stop   [q] quit"
	}
	drawText(r.screen, originX-1, y+3, hint, hintStyle)

	if v.Message != "" {
		drawText(r.screen, originX-1, y+4, v.Message, messageStyle)
	}
}

// SlotRow строка экрана (от верха окна барабана), в которой рисуется символ слота
func SlotRow(y, slotHeight float64) int {
	center := (y - slotHeight/2) / slotHeight * rowsPerSlot
	return int(math.Floor(center))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
