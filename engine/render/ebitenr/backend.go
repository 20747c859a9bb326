// Package ebitenr paints a render.DrawList onto an ebiten image.
package ebitenr

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/dogfight/engine/render"
)

const ellipseSegments = 32

// Backend draws commands with vector primitives, sprite sub-images and a
// bitmap font scaled to the requested size.
type Backend struct {
	Sheets *Sheets

	face  *text.GoXFace
	white *ebiten.Image
	path  vector.Path
	vs    []ebiten.Vertex
	is    []uint16
}

func NewBackend(sheets *Sheets) *Backend {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Backend{
		Sheets: sheets,
		face:   text.NewGoXFace(basicfont.Face7x13),
		white:  white,
	}
}

// Draw paints cmds in order.
func (b *Backend) Draw(screen *ebiten.Image, cmds []render.Command) {
	for i := range cmds {
		c := &cmds[i]
		switch c.Kind {
		case render.KindFillRect:
			vector.DrawFilledRect(screen, f32(c.X), f32(c.Y), f32(c.W), f32(c.H), c.Color, false)
		case render.KindStrokeRect:
			vector.StrokeRect(screen, f32(c.X), f32(c.Y), f32(c.W), f32(c.H), f32(c.Stroke), c.Color, false)
		case render.KindCircle:
			if c.Stroke > 0 {
				vector.StrokeCircle(screen, f32(c.X), f32(c.Y), f32(c.W), f32(c.Stroke), c.Color, true)
			} else {
				vector.DrawFilledCircle(screen, f32(c.X), f32(c.Y), f32(c.W), c.Color, true)
			}
		case render.KindEllipse:
			b.ellipse(screen, c)
		case render.KindGradient:
			b.gradient(screen, c)
		case render.KindSprite:
			b.sprite(screen, c)
		case render.KindText:
			b.text(screen, c)
		}
	}
}

func (b *Backend) ellipse(screen *ebiten.Image, c *render.Command) {
	b.path = vector.Path{}
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x, y := f32(c.X+c.W*math.Cos(a)), f32(c.Y+c.H*math.Sin(a))
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()

	b.vs, b.is = b.path.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
	r, g, bl, a := unit(c.Color)
	for i := range b.vs {
		b.vs[i].SrcX, b.vs[i].SrcY = 1, 1
		b.vs[i].ColorR, b.vs[i].ColorG, b.vs[i].ColorB, b.vs[i].ColorA = r, g, bl, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(b.vs, b.is, b.white, op)
}

func (b *Backend) gradient(screen *ebiten.Image, c *render.Command) {
	tr, tg, tb, ta := unit(c.Color)
	br, bg, bb, ba := unit(c.Color2)
	x0, y0, x1, y1 := f32(c.X), f32(c.Y), f32(c.X+c.W), f32(c.Y+c.H)
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: x1, DstY: y0, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: x0, DstY: y1, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 1, 3, 2}, b.white, nil)
}

func (b *Backend) sprite(screen *ebiten.Image, c *render.Command) {
	ref := c.Sprite
	sheet := b.Sheets.Get(ref.Sheet)
	var src image.Rectangle
	if sheet != nil {
		src = ref.Source(sheet.Bounds())
	}
	if src.Empty() {
		b.fallback(screen, c)
		return
	}

	sub := sheet.SubImage(src).(*ebiten.Image)
	sw, sh := float64(src.Dx()), float64(src.Dy())
	op := &ebiten.DrawImageOptions{}
	if ref.Flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(sw, 0)
	}
	op.GeoM.Scale(c.W/sw, c.H/sh)
	op.GeoM.Translate(c.X, c.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
}

// fallback draws a fuselage and a wing in the plane's body colour
func (b *Backend) fallback(screen *ebiten.Image, c *render.Command) {
	body := c.Sprite.Fallback
	vector.DrawFilledRect(screen, f32(c.X+c.W*0.1), f32(c.Y+c.H*0.4), f32(c.W*0.8), f32(c.H*0.2), body, false)
	vector.DrawFilledRect(screen, f32(c.X+c.W*0.35), f32(c.Y+c.H*0.15), f32(c.W*0.15), f32(c.H*0.7), body, false)
}

func (b *Backend) text(screen *ebiten.Image, c *render.Command) {
	scale := 1.0
	if c.Size > 0 {
		scale = c.Size / float64(basicfont.Face7x13.Height)
	}
	m := b.face.Metrics()
	op := &text.DrawOptions{}
	switch c.Align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(c.X, c.Y-m.HAscent*scale)
	op.ColorScale.ScaleWithColor(c.Color)
	text.Draw(screen, c.Text, b.face, op)
}

func f32(v float64) float32 { return float32(v) }

func unit(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
