package entity

import (
	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/render"
)

// Bullet flies straight along x in its team's direction.
type Bullet struct {
	Team  core.Team
	X, Y  float64
	W, H  float64
	Speed float64
}

func NewBullet(team core.Team, at core.Vec2) Bullet {
	return Bullet{
		Team:  team,
		X:     at.X,
		Y:     at.Y,
		W:     core.BulletWidth,
		H:     core.BulletHeight,
		Speed: core.BulletSpeed,
	}
}

func (b *Bullet) Update() {
	b.X += b.Speed * b.Team.Spec().Direction
}

// Pos is the point used for hit tests
func (b *Bullet) Pos() core.Vec2 { return core.Vec2{X: b.X, Y: b.Y} }

// OffField reports whether the bullet has left the playfield horizontally.
func (b *Bullet) OffField(width float64) bool {
	return b.X < 0 || b.X > width
}

func (b *Bullet) Draw(dl *render.DrawList) {
	dl.FillRect(b.X, b.Y, b.W, b.H, colBulletBody)
	dl.FillRect(b.X, b.Y+1, b.W-2, 1, colBulletCore)
}
