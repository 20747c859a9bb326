package render

import "math"

// Camera maps playfield coordinates onto a screen grid of a different
// resolution, such as terminal cells. The whole field is always in view.
type Camera struct {
	FieldW, FieldH   float64
	ScreenW, ScreenH int // grid size in cells or pixels
}

// NewCamera fits a field of fw x fh into a screen of sw x sh
func NewCamera(fw, fh float64, sw, sh int) *Camera {
	c := &Camera{FieldW: fw, FieldH: fh}
	c.Resize(sw, sh)
	return c
}

// Resize updates the screen size, e.g. after a terminal resize event
func (c *Camera) Resize(sw, sh int) {
	c.ScreenW, c.ScreenH = sw, sh
}

func (c *Camera) toScreenX(wx float64) float64 {
	if c.FieldW <= 0 {
		return 0
	}
	return wx * float64(c.ScreenW) / c.FieldW
}

func (c *Camera) toScreenY(wy float64) float64 {
	if c.FieldH <= 0 {
		return 0
	}
	return wy * float64(c.ScreenH) / c.FieldH
}

// WorldToScreen converts a field position to a screen cell
func (c *Camera) WorldToScreen(wx, wy float64) (int, int) {
	return int(math.Floor(c.toScreenX(wx))), int(math.Floor(c.toScreenY(wy)))
}

// ScreenToWorld returns the field position of a cell's top-left corner
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 0, 0
	}
	return float64(sx) * c.FieldW / float64(c.ScreenW), float64(sy) * c.FieldH / float64(c.ScreenH)
}

// Span returns the inclusive cell range covered by a field box, clamped to
// the screen. ok is false when the box is off screen. Non-empty boxes always
// cover at least one cell.
func (c *Camera) Span(x, y, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = c.WorldToScreen(x, y)
	x1, y1 = c.WorldToScreen(x+w, y+h)
	if x1 > x0 && float64(x1) == c.toScreenX(x+w) {
		x1--
	}
	if y1 > y0 && float64(y1) == c.toScreenY(y+h) {
		y1--
	}
	if x1 < 0 || y1 < 0 || x0 >= c.ScreenW || y0 >= c.ScreenH {
		return 0, 0, 0, 0, false
	}
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= c.ScreenW {
		x1 = c.ScreenW - 1
	}
	if y1 >= c.ScreenH {
		y1 = c.ScreenH - 1
	}
	return x0, y0, x1, y1, true
}
