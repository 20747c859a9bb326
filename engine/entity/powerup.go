package entity

import (
	"math/rand"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/render"
)

// PowerUp is a pickup drifting left until collected or off screen.
type PowerUp struct {
	ID        core.EntityID
	Kind      core.PowerUpKind
	X, Y      float64
	W, H      float64
	Speed     float64
	Collected bool
}

// NewPowerUp picks a kind uniformly at random.
func NewPowerUp(id core.EntityID, x, y float64, rng *rand.Rand) *PowerUp {
	return &PowerUp{
		ID:    id,
		Kind:  core.PowerUpKind(rng.Intn(int(core.PowerUpKindCount))),
		X:     x,
		Y:     y,
		W:     core.PowerUpSize,
		H:     core.PowerUpSize,
		Speed: core.PowerUpDrift,
	}
}

func (p *PowerUp) Box() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func (p *PowerUp) Update() { p.X -= p.Speed }

// Gone reports whether the pickup drifted off the left edge.
func (p *PowerUp) Gone() bool { return p.X < core.PowerUpDespawnX }

func (p *PowerUp) Draw(dl *render.DrawList) {
	c := p.Box().Center()
	dl.Circle(c.X, c.Y, p.W/2, colPowerUp[p.Kind])
	dl.StrokeCircle(c.X, c.Y, p.W/2, 2, colBarBorder)
	dl.Text(powerUpIcons[p.Kind], c.X, c.Y+5, 16, render.AlignCenter, colBarBorder)
}
