// Package termr rasterizes a render.DrawList into terminal cells with tcell.
package termr

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/dogfight/engine/render"
)

// minAlpha is the opacity below which fills are not drawn in cells
const minAlpha = 0x30

// Backend draws into a Grid sized to the terminal and flushes it to a
// tcell screen.
type Backend struct {
	Grid   *Grid
	Camera *render.Camera
}

// NewBackend maps a field of fw x fh onto a cols x rows terminal
func NewBackend(fw, fh float64, cols, rows int) *Backend {
	return &Backend{Grid: NewGrid(cols, rows), Camera: render.NewCamera(fw, fh, cols, rows)}
}

// Resize follows a terminal resize
func (b *Backend) Resize(cols, rows int) {
	b.Grid.Resize(cols, rows)
	b.Camera.Resize(cols, rows)
}

// Draw rasterizes cmds in order over a cleared grid.
func (b *Backend) Draw(cmds []render.Command) {
	b.Grid.Clear()
	for i := range cmds {
		c := &cmds[i]
		switch c.Kind {
		case render.KindGradient:
			b.gradient(c)
		case render.KindFillRect:
			if c.Color.A >= minAlpha {
				b.fill(c.X, c.Y, c.W, c.H, c.Color)
			}
		case render.KindStrokeRect:
			b.stroke(c)
		case render.KindEllipse:
			if c.Color.A >= minAlpha {
				b.fill(c.X-c.W, c.Y-c.H, 2*c.W, 2*c.H, c.Color)
			}
		case render.KindCircle:
			b.circle(c)
		case render.KindSprite:
			b.sprite(c)
		case render.KindText:
			b.text(c)
		}
	}
}

func (b *Backend) fill(x, y, w, h float64, col color.NRGBA) {
	x0, y0, x1, y1, ok := b.Camera.Span(x, y, w, h)
	if !ok {
		return
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if col.A == 0xff {
				b.Grid.Fill(cx, cy, col)
			} else {
				b.Grid.Tint(cx, cy, col)
			}
		}
	}
}

func (b *Backend) gradient(c *render.Command) {
	x0, y0, x1, y1, ok := b.Camera.Span(c.X, c.Y, c.W, c.H)
	if !ok {
		return
	}
	for cy := y0; cy <= y1; cy++ {
		t := 0.0
		if y1 > y0 {
			t = float64(cy-y0) / float64(y1-y0)
		}
		col := render.Lerp(c.Color, c.Color2, t)
		col.A = 0xff
		for cx := x0; cx <= x1; cx++ {
			b.Grid.Fill(cx, cy, col)
		}
	}
}

// stroke outlines boxes big enough to have an inside; thinner ones such as
// health bar borders would hide their fill.
func (b *Backend) stroke(c *render.Command) {
	x0, y0, x1, y1, ok := b.Camera.Span(c.X, c.Y, c.W, c.H)
	if !ok || x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	for cx := x0 + 1; cx < x1; cx++ {
		b.Grid.Put(cx, y0, '─', c.Color)
		b.Grid.Put(cx, y1, '─', c.Color)
	}
	for cy := y0 + 1; cy < y1; cy++ {
		b.Grid.Put(x0, cy, '│', c.Color)
		b.Grid.Put(x1, cy, '│', c.Color)
	}
	b.Grid.Put(x0, y0, '┌', c.Color)
	b.Grid.Put(x1, y0, '┐', c.Color)
	b.Grid.Put(x0, y1, '└', c.Color)
	b.Grid.Put(x1, y1, '┘', c.Color)
}

func (b *Backend) circle(c *render.Command) {
	if c.Color.A < minAlpha {
		return
	}
	if c.Stroke > 0 {
		x0, y0, x1, y1, ok := b.Camera.Span(c.X-c.W, c.Y-c.H, 2*c.W, 2*c.H)
		if !ok {
			return
		}
		b.Grid.Put(x0, (y0+y1)/2, '(', c.Color)
		b.Grid.Put(x1, (y0+y1)/2, ')', c.Color)
		return
	}
	x, y := b.Camera.WorldToScreen(c.X, c.Y)
	glyph := '·'
	if c.W >= 4 {
		glyph = '*'
	}
	b.Grid.Put(x, y, glyph, c.Color)
}

// sprite draws the plane as a row of glyphs pointing the way it flies
func (b *Backend) sprite(c *render.Command) {
	x0, y0, x1, y1, ok := b.Camera.Span(c.X, c.Y, c.W, c.H)
	if !ok {
		return
	}
	fg := c.Sprite.Fallback
	fg.A = 0xff
	mid := (y0 + y1) / 2
	nose, tail := '>', '='
	if c.Sprite.Flip {
		nose = '<'
	}
	for cx := x0; cx <= x1; cx++ {
		b.Grid.Put(cx, mid, tail, fg)
	}
	if c.Sprite.Flip {
		b.Grid.Put(x0, mid, nose, fg)
	} else {
		b.Grid.Put(x1, mid, nose, fg)
	}
	wing := x0 + (x1-x0)/2
	if y1 > y0 {
		b.Grid.Put(wing, mid-1, '|', fg)
		b.Grid.Put(wing, mid+1, '|', fg)
	}
}

func (b *Backend) text(c *render.Command) {
	rs := []rune(c.Text)
	x, y := b.Camera.WorldToScreen(c.X, c.Y)
	if y >= b.Grid.H {
		y = b.Grid.H - 1
	}
	switch c.Align {
	case render.AlignCenter:
		x -= len(rs) / 2
	case render.AlignRight:
		x -= len(rs)
	}
	for i, r := range rs {
		b.Grid.Put(x+i, y, r, c.Color)
	}
}

// Flush copies the grid to the screen and shows it.
func (b *Backend) Flush(screen tcell.Screen) {
	g := b.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cell := g.cells[y*g.W+x]
			screen.SetContent(x, y, cell.Rune, nil, style(cell))
		}
	}
	screen.Show()
}

func style(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if c.Fg.A != 0 {
		st = st.Foreground(rgb(c.Fg))
	}
	if c.Bg.A != 0 {
		st = st.Background(rgb(c.Bg))
	}
	return st
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
