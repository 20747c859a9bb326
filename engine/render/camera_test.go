package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamera_Mapping(t *testing.T) {
	c := NewCamera(1200, 600, 120, 40)
	x, y := c.WorldToScreen(600, 300)
	assert.Equal(t, 60, x)
	assert.Equal(t, 20, y)

	wx, wy := c.ScreenToWorld(60, 20)
	assert.InDelta(t, 600, wx, 1e-9)
	assert.InDelta(t, 300, wy, 1e-9)

	c.Resize(240, 80)
	x, _ = c.WorldToScreen(600, 0)
	assert.Equal(t, 120, x)
}

func TestCamera_Span(t *testing.T) {
	c := NewCamera(1200, 600, 120, 40)

	x0, y0, x1, y1, ok := c.Span(100, 15, 160, 128)
	assert.True(t, ok)
	assert.Equal(t, []int{10, 1, 25, 9}, []int{x0, y0, x1, y1})

	// sub-cell boxes still cover a cell
	x0, _, x1, _, ok = c.Span(101, 100, 2, 2)
	assert.True(t, ok)
	assert.Equal(t, x0, x1)

	_, _, _, _, ok = c.Span(1300, 0, 50, 50)
	assert.False(t, ok)

	x0, _, x1, _, ok = c.Span(-50, 0, 2000, 10)
	assert.True(t, ok)
	assert.Equal(t, 0, x0)
	assert.Equal(t, 119, x1)

	z := NewCamera(0, 0, 10, 10)
	wx, wy := z.ScreenToWorld(3, 3)
	assert.Zero(t, wx+wy)
}
