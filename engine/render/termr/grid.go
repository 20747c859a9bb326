package termr

import (
	"image/color"

	"github.com/1siamBot/dogfight/engine/render"
)

// Cell is one terminal character with its colours
type Cell struct {
	Rune rune
	Fg   color.NRGBA
	Bg   color.NRGBA
}

// Grid is an off-screen character buffer the draw list is rasterized into
// before it is flushed to the terminal.
type Grid struct {
	W, H  int
	cells []Cell
}

func NewGrid(w, h int) *Grid {
	g := &Grid{}
	g.Resize(w, h)
	return g
}

func (g *Grid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.W, g.H = w, h
	if cap(g.cells) >= w*h {
		g.cells = g.cells[:w*h]
	} else {
		g.cells = make([]Cell, w*h)
	}
	g.Clear()
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' '}
	}
}

func (g *Grid) in(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// At returns the cell at (x, y), or a blank cell off the grid
func (g *Grid) At(x, y int) Cell {
	if !g.in(x, y) {
		return Cell{Rune: ' '}
	}
	return g.cells[y*g.W+x]
}

// Fill sets the background of a cell and clears its glyph.
func (g *Grid) Fill(x, y int, bg color.NRGBA) {
	if g.in(x, y) {
		g.cells[y*g.W+x] = Cell{Rune: ' ', Bg: bg}
	}
}

// Tint blends a translucent colour over the background, keeping the glyph.
func (g *Grid) Tint(x, y int, over color.NRGBA) {
	if !g.in(x, y) {
		return
	}
	c := &g.cells[y*g.W+x]
	t := float64(over.A) / 255
	over.A = 0xff
	base := c.Bg
	if base.A == 0 {
		base = color.NRGBA{A: 0xff}
	}
	c.Bg = render.Lerp(base, over, t)
}

// Put writes a glyph, keeping the cell's background.
func (g *Grid) Put(x, y int, r rune, fg color.NRGBA) {
	if g.in(x, y) {
		c := &g.cells[y*g.W+x]
		c.Rune, c.Fg = r, fg
	}
}

// Row returns the glyphs of row y as a string
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.H {
		return ""
	}
	rs := make([]rune, g.W)
	for x := 0; x < g.W; x++ {
		rs[x] = g.cells[y*g.W+x].Rune
	}
	return string(rs)
}
