package entity

import (
	"math/rand"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/render"
)

// Cloud is background decoration drifting right with parallax.
type Cloud struct {
	X, Y  float64 // centre
	W, H  float64
	Speed float64
	Depth float64 // [0,1), nearer clouds are faster and more opaque
}

func NewCloud(field core.Rect, rng *rand.Rand) Cloud {
	return Cloud{
		X:     rng.Float64() * field.W,
		Y:     rng.Float64() * field.H * 0.6,
		W:     80 + rng.Float64()*40,
		H:     40 + rng.Float64()*20,
		Speed: 0.3 + rng.Float64()*0.5,
		Depth: rng.Float64(),
	}
}

// Update drifts the cloud and wraps it back past the left edge.
func (c *Cloud) Update(field core.Rect, rng *rand.Rand) {
	c.X += c.Speed * (0.5 + c.Depth*0.5)
	if c.X > field.W+c.W {
		c.X = -c.W
		c.Y = rng.Float64() * field.H * 0.6
	}
}

func (c *Cloud) Draw(dl *render.DrawList) {
	dl.Ellipse(c.X, c.Y, c.W/2, c.H/2, render.WithAlpha(colCloud, 0.5+c.Depth*0.3))
}
