package render

import (
	"strings"

	"slot_reel/internal/config"

	"github.com/gdamore/tcell/v2"
)

const unknownGlyph = '?'

type glyph struct {
	r     rune
	style tcell.Style
}

// Glyphs - как рисовать символы. Собирается из конфига и передаётся рендеру при создании
type Glyphs struct {
	byID     map[int]glyph
	fallback glyph
}

func NewGlyphs(assets []config.SymbolAsset) *Glyphs {
	g := &Glyphs{
		byID:     make(map[int]glyph, len(assets)),
		fallback: glyph{r: unknownGlyph, style: tcell.StyleDefault},
	}

	for _, a := range assets {
		r := unknownGlyph
		if rs := []rune(strings.TrimSpace(a.Glyph)); len(rs) > 0 {
			r = rs[0]
		}

		style := tcell.StyleDefault.Bold(true)
		if a.Color != "" {
			style = style.Foreground(tcell.GetColor(a.Color))
		}
		g.byID[a.ID] = glyph{r: r, style: style}
	}

	return g
}

// Lookup символ и стиль. Неизвестный ID рисуется как '?'
func (g *Glyphs) Lookup(id int) (rune, tcell.Style) {
	gl, ok := g.byID[id]
	if !ok {
		gl = g.fallback
	}
	return gl.r, gl.style
}
