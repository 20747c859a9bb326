package entity

import (
	"math"
	"time"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/render"
)

// Plane is a combatant of either team.
type Plane struct {
	ID        core.EntityID
	Team      core.Team
	X, Y      float64
	W, H      float64
	Speed     float64
	Health    int
	MaxHealth int
	Bullets   []Bullet

	anim        core.Animator
	lastShot    time.Duration
	hasShot     bool
	shotSeq     uint64
	shieldUntil time.Duration
	rapidUntil  time.Duration
	damageFlash int
	wrecked     bool
}

// NewPlane builds a full-health plane at (x, y) sized from the team table.
func NewPlane(id core.EntityID, team core.Team, x, y float64, atlas *core.Atlas) *Plane {
	spec := team.Spec()
	return &Plane{
		ID:        id,
		Team:      team,
		X:         x,
		Y:         y,
		W:         spec.Width,
		H:         spec.Height,
		Speed:     core.PlaneSpeed,
		Health:    core.PlaneMaxHealth,
		MaxHealth: core.PlaneMaxHealth,
		anim:      core.NewAnimator(atlas),
	}
}

// Box is the collision box
func (p *Plane) Box() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Exploding reports whether the explosion clip is playing.
func (p *Plane) Exploding() bool { return p.anim.State == core.AnimExploding }

// Destroyed reports whether health has run out.
func (p *Plane) Destroyed() bool { return p.Health <= 0 }

// Wrecked reports whether the plane has exploded at any point this life.
func (p *Plane) Wrecked() bool { return p.wrecked }

// Live reports whether the plane can still shoot, be hit and collide.
func (p *Plane) Live() bool { return !p.wrecked && !p.Destroyed() }

func (p *Plane) AnimState() core.AnimState { return p.anim.State }
func (p *Plane) AnimFrame() int            { return p.anim.Frame }
func (p *Plane) DamageFlash() int          { return p.damageFlash }
func (p *Plane) ShotSeq() uint64           { return p.shotSeq }

func (p *Plane) Shielded(now time.Duration) bool  { return now < p.shieldUntil }
func (p *Plane) RapidFire(now time.Duration) bool { return now < p.rapidUntil }

// ShieldLeft returns the remaining shield time, zero when inactive
func (p *Plane) ShieldLeft(now time.Duration) time.Duration {
	return max(0, p.shieldUntil-now)
}

// RapidFireLeft returns the remaining rapid-fire time, zero when inactive
func (p *Plane) RapidFireLeft(now time.Duration) time.Duration {
	return max(0, p.rapidUntil-now)
}

// Cooldown is the minimum gap between shots right now.
func (p *Plane) Cooldown(now time.Duration) time.Duration {
	if p.RapidFire(now) {
		return core.FireCooldown / 2
	}
	return core.FireCooldown
}

// Muzzle is where new bullets appear
func (p *Plane) Muzzle() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}.Add(p.Team.Spec().Muzzle)
}

// Shoot fires one bullet if the plane is live and off cooldown. The first
// shot of a life is always allowed.
func (p *Plane) Shoot(t *Tick) bool {
	if !p.Live() {
		return false
	}
	if p.hasShot && t.Now-p.lastShot <= p.Cooldown(t.Now) {
		return false
	}
	at := p.Muzzle()
	p.Bullets = append(p.Bullets, NewBullet(p.Team, at))
	p.lastShot = t.Now
	p.hasShot = true
	p.shotSeq++
	p.anim.Enter(core.AnimShooting)

	if t.Timers != nil {
		t.Timers.After(t.Now, core.ShootAnimTime, core.Timer{
			Kind:       core.TimerRevertShoot,
			Entity:     p.ID,
			Seq:        p.shotSeq,
			Generation: t.Generation,
		})
	}
	if t.Particles != nil {
		t.Particles.Emit(ParticleMuzzle, at, core.MuzzleParticles, t.Rand)
	}
	t.emit(core.EvtShotFired, core.ShotPayload{Team: p.Team, At: at})
	return true
}

// RevertShoot returns to the flying clip if seq is still the latest shot
// and the plane is still in the shooting clip.
func (p *Plane) RevertShoot(seq uint64) bool {
	if seq != p.shotSeq || p.anim.State != core.AnimShooting {
		return false
	}
	p.anim.Enter(core.AnimFlying)
	return true
}

// TakeDamage removes health unless the plane is shielded, exploding or
// already destroyed. It never explodes the plane; callers check Destroyed.
func (p *Plane) TakeDamage(now time.Duration, amount int) bool {
	if p.Shielded(now) || p.Exploding() || p.Destroyed() || p.wrecked {
		return false
	}
	p.Health = core.ClampInt(p.Health-amount, 0, p.MaxHealth)
	p.damageFlash = core.DamageFlash
	return true
}

// Explode starts the explosion clip and bursts particles. Only the first
// call in a life has any effect.
func (p *Plane) Explode(t *Tick) bool {
	if p.wrecked {
		return false
	}
	p.wrecked = true
	p.anim.Enter(core.AnimExploding)
	c := p.Box().Center()
	if t.Particles != nil {
		t.Particles.Emit(ParticleExplosion, c, core.ExplosionParticles, t.Rand)
	}
	t.emit(core.EvtPlaneExploded, core.ExplosionPayload{ID: p.ID, Team: p.Team, At: c})
	return true
}

// ApplyPowerUp applies a pickup's effect.
func (p *Plane) ApplyPowerUp(now time.Duration, kind core.PowerUpKind) {
	switch kind {
	case core.PowerUpHealth:
		p.Health = core.ClampInt(p.Health+core.HealAmount, 0, p.MaxHealth)
	case core.PowerUpRapidFire:
		p.rapidUntil = now + core.RapidFireTime
	case core.PowerUpShield:
		p.shieldUntil = now + core.ShieldTime
	}
}

// Move shifts the plane, keeping it inside bounds.
func (p *Plane) Move(dx, dy float64, bounds core.Rect) {
	p.X = core.Clamp(p.X+dx, bounds.X, bounds.Right())
	p.Y = core.Clamp(p.Y+dy, bounds.Y, bounds.Bottom())
}

// Update moves the plane's bullets and drops those that left the field.
func (p *Plane) Update(t *Tick) {
	kept := p.Bullets[:0]
	for i := range p.Bullets {
		p.Bullets[i].Update()
		if !p.Bullets[i].OffField(t.Field.W) {
			kept = append(kept, p.Bullets[i])
		}
	}
	p.Bullets = kept
}

// RemoveBullet drops bullet i.
func (p *Plane) RemoveBullet(i int) {
	p.Bullets = append(p.Bullets[:i], p.Bullets[i+1:]...)
}

// Animate advances the sprite clip and visual timers by one refresh tick.
// It reports whether an explosion clip finished on this tick.
func (p *Plane) Animate(t *Tick) bool {
	if p.damageFlash > 0 {
		p.damageFlash--
	}
	finished := false
	if p.anim.Advance(t.RefreshRate) && p.anim.State == core.AnimExploding {
		p.anim.Enter(core.AnimFlying)
		finished = true
	}
	if p.Live() && float64(p.Health) < float64(p.MaxHealth)*core.SmokeThreshold &&
		t.Rand.Float64() < core.SmokeChance && t.Particles != nil {
		t.Particles.Emit(ParticleSmoke, p.Box().Center(), 1, t.Rand)
	}
	return finished
}

// Reset restores a fresh plane at (x, y), keeping the id.
func (p *Plane) Reset(x, y float64) {
	*p = Plane{
		ID:        p.ID,
		Team:      p.Team,
		X:         x,
		Y:         y,
		W:         p.W,
		H:         p.H,
		Speed:     p.Speed,
		Health:    p.MaxHealth,
		MaxHealth: p.MaxHealth,
		Bullets:   p.Bullets[:0],
		anim:      core.NewAnimator(p.anim.Atlas),
		shotSeq:   p.shotSeq,
	}
}

// Draw appends the plane's commands. A wreck whose explosion has played
// out is not drawn.
func (p *Plane) Draw(dl *render.DrawList, now time.Duration) {
	if p.wrecked && !p.Exploding() {
		return
	}
	spec := p.Team.Spec()
	c := p.Box().Center()

	if p.Shielded(now) {
		dl.StrokeCircle(c.X, c.Y, math.Max(p.W, p.H)/2+10, 3, colShield)
	}
	if p.damageFlash > 0 {
		dl.FillRect(p.X, p.Y, p.W, p.H, colDamageFlash)
	}

	col, row := p.anim.Cell()
	offset := 0.0
	if p.anim.State != core.AnimFlying {
		offset = spec.ActionShift
	}
	dl.Sprite(render.SpriteRef{
		Sheet:      spec.Sheet,
		Col:        col,
		Row:        row,
		CellW:      p.anim.Atlas.FrameWidth,
		CellH:      p.anim.Atlas.FrameHeight,
		CropBottom: spec.CropBottom,
		Flip:       spec.Flip,
		Fallback:   spec.Fallback,
	}, p.X, p.Y+offset, p.W, p.H)

	if !p.Exploding() {
		p.drawHealthBar(dl)
	}
}

const (
	barWidth  = 50.0
	barHeight = 5.0
)

func (p *Plane) drawHealthBar(dl *render.DrawList) {
	x := p.X + (p.W-barWidth)/2
	y := p.Y - 12
	frac := float64(p.Health) / float64(p.MaxHealth)

	dl.FillRect(x, y, barWidth, barHeight, colBarBack)
	fill := colHealthLow
	switch {
	case frac > 0.6:
		fill = colHealthGood
	case frac > 0.3:
		fill = colHealthWarn
	}
	dl.FillRect(x, y, frac*barWidth, barHeight, fill)
	dl.StrokeRect(x, y, barWidth, barHeight, 1, colBarBorder)
}

// DrawBullets appends the plane's bullets.
func (p *Plane) DrawBullets(dl *render.DrawList) {
	for i := range p.Bullets {
		p.Bullets[i].Draw(dl)
	}
}
