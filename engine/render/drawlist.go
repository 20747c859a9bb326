package render

import (
	"image"
	"image/color"
)

// Layer groups commands in paint order. Backends paint commands in the
// order they were appended; the layer is informational and lets tests and
// the terminal backend reason about what a command belongs to.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerClouds
	LayerAlly
	LayerAllyBullets
	LayerEnemies
	LayerPowerUps
	LayerParticles
	LayerHUD
	LayerOverlay
)

// Kind is the primitive a command draws
type Kind uint8

const (
	KindFillRect Kind = iota
	KindStrokeRect
	KindCircle
	KindEllipse
	KindSprite
	KindText
	KindGradient
)

// Align is the horizontal anchor of a text command
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// SpriteRef selects one atlas cell and how to place it.
type SpriteRef struct {
	Sheet      string
	Col, Row   int
	CellW      int
	CellH      int
	CropBottom int
	Flip       bool
	// Fallback is the body colour used when the sheet is not loaded.
	Fallback color.NRGBA
}

// Source returns the sheet rectangle for the cell, clipped to bounds.
// An empty result means the sheet cannot serve this cell.
func (r SpriteRef) Source(bounds image.Rectangle) image.Rectangle {
	x, y := r.Col*r.CellW, r.Row*r.CellH
	h := r.CellH - r.CropBottom
	if r.CellW <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+r.CellW, y+h).Add(bounds.Min).Intersect(bounds)
}

// Command is one drawing primitive. Fields not used by a kind are zero.
// Colours are color.NRGBA: straight alpha, as the vector and text APIs take it.
type Command struct {
	Kind  Kind
	Layer Layer

	X, Y, W, H float64
	// Stroke is the outline width; zero means filled.
	Stroke float64

	Color  color.NRGBA
	Color2 color.NRGBA // gradient bottom colour

	Sprite SpriteRef

	Text  string
	Size  float64
	Align Align
}

// DrawList collects the commands for one frame.
type DrawList struct {
	cmds  []Command
	layer Layer
}

// NewDrawList returns an empty list with room for a typical frame
func NewDrawList() *DrawList {
	return &DrawList{cmds: make([]Command, 0, 256)}
}

// Reset empties the list, keeping its storage
func (d *DrawList) Reset() {
	d.cmds = d.cmds[:0]
	d.layer = LayerBackground
}

// SetLayer tags subsequent commands
func (d *DrawList) SetLayer(l Layer) { d.layer = l }

func (d *DrawList) push(c Command) {
	c.Layer = d.layer
	d.cmds = append(d.cmds, c)
}

// Commands returns the commands in paint order
func (d *DrawList) Commands() []Command { return d.cmds }

// Len returns the number of queued commands
func (d *DrawList) Len() int { return len(d.cmds) }

func (d *DrawList) FillRect(x, y, w, h float64, c color.NRGBA) {
	d.push(Command{Kind: KindFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *DrawList) StrokeRect(x, y, w, h, width float64, c color.NRGBA) {
	d.push(Command{Kind: KindStrokeRect, X: x, Y: y, W: w, H: h, Stroke: width, Color: c})
}

// Circle draws a full arc centred on (cx, cy). X/Y hold the centre and W the
// radius.
func (d *DrawList) Circle(cx, cy, r float64, c color.NRGBA) {
	d.push(Command{Kind: KindCircle, X: cx, Y: cy, W: r, H: r, Color: c})
}

func (d *DrawList) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	d.push(Command{Kind: KindCircle, X: cx, Y: cy, W: r, H: r, Stroke: width, Color: c})
}

// Ellipse is centred on (cx, cy) with radii rx, ry.
func (d *DrawList) Ellipse(cx, cy, rx, ry float64, c color.NRGBA) {
	d.push(Command{Kind: KindEllipse, X: cx, Y: cy, W: rx, H: ry, Color: c})
}

// Sprite draws ref scaled into the destination box.
func (d *DrawList) Sprite(ref SpriteRef, x, y, w, h float64) {
	d.push(Command{Kind: KindSprite, X: x, Y: y, W: w, H: h, Sprite: ref})
}

// Text draws s with its baseline at y.
func (d *DrawList) Text(s string, x, y, size float64, align Align, c color.NRGBA) {
	d.push(Command{Kind: KindText, X: x, Y: y, Text: s, Size: size, Align: align, Color: c})
}

// Gradient fills a box with a vertical blend from top to bottom.
func (d *DrawList) Gradient(x, y, w, h float64, top, bottom color.NRGBA) {
	d.push(Command{Kind: KindGradient, X: x, Y: y, W: w, H: h, Color: top, Color2: bottom})
}

// Count returns how many commands of kind k sit on layer l
func (d *DrawList) Count(l Layer, k Kind) int {
	n := 0
	for _, c := range d.cmds {
		if c.Layer == l && c.Kind == k {
			n++
		}
	}
	return n
}

// WithAlpha returns c with its alpha scaled by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// Lerp blends two colours, t in [0,1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Hex builds an opaque colour from 0xRRGGBB.
func Hex(v uint32) color.NRGBA {
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}
