package entity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTick(now time.Duration) *Tick {
	return &Tick{
		Now:         now,
		RefreshRate: core.TargetFPS,
		Field:       core.Rect{W: 1200, H: 600},
		Rand:        rand.New(rand.NewSource(1)),
		Particles:   NewParticlePool(0),
		Timers:      &core.Scheduler{},
		Bus:         core.NewEventBus(),
	}
}

func newTestPlane(team core.Team) *Plane {
	return NewPlane(1, team, 100, 100, core.DefaultAtlas())
}

func TestNewPlane_UsesTeamTable(t *testing.T) {
	ally := newTestPlane(core.TeamAlly)
	assert.Equal(t, 160.0, ally.W)
	assert.Equal(t, 128.0, ally.H)
	enemy := newTestPlane(core.TeamEnemy)
	assert.Equal(t, 140.0, enemy.W)
	assert.Equal(t, 112.0, enemy.H)
	assert.Equal(t, core.Vec2{X: 110, Y: 170}, enemy.Muzzle())
	assert.Equal(t, 100, enemy.Health)
}

func TestPlane_TakeDamageClampsAtZero(t *testing.T) {
	p := newTestPlane(core.TeamEnemy)
	for i := 0; i < 4; i++ {
		require.True(t, p.TakeDamage(0, 30))
	}
	assert.Zero(t, p.Health)
	assert.True(t, p.Destroyed())
	assert.False(t, p.TakeDamage(0, 30), "destroyed planes take no damage")
	assert.Zero(t, p.Health)
	assert.Equal(t, core.DamageFlash, p.DamageFlash())
}

func TestPlane_ShieldBlocksDamage(t *testing.T) {
	p := newTestPlane(core.TeamAlly)
	p.ApplyPowerUp(0, core.PowerUpShield)

	assert.False(t, p.TakeDamage(time.Second, 10))
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 9*time.Second, p.ShieldLeft(time.Second))

	assert.True(t, p.TakeDamage(core.ShieldTime, 10), "shield expired")
	assert.Equal(t, 90, p.Health)
}

func TestPlane_HealCapsAtMax(t *testing.T) {
	p := newTestPlane(core.TeamAlly)
	p.TakeDamage(0, 30)
	p.ApplyPowerUp(0, core.PowerUpHealth)
	assert.Equal(t, 100, p.Health)
}

func TestPlane_ExplodeIsIdempotent(t *testing.T) {
	tick := newTestTick(0)
	p := newTestPlane(core.TeamEnemy)

	require.True(t, p.Explode(tick))
	for i := 0; i < 3; i++ {
		p.Animate(tick)
	}
	frame := p.AnimFrame()
	assert.False(t, p.Explode(tick))

	assert.Equal(t, core.ExplosionParticles, tick.Particles.Count(ParticleExplosion))
	assert.Equal(t, core.AnimExploding, p.AnimState())
	assert.Equal(t, frame, p.AnimFrame())
	assert.Equal(t, 1, tick.Bus.Pending())
}

func TestPlane_ExplodingTakesNoDamage(t *testing.T) {
	tick := newTestTick(0)
	p := newTestPlane(core.TeamAlly)
	p.Explode(tick)
	assert.False(t, p.TakeDamage(0, 10))
	assert.Equal(t, 100, p.Health)
}

func TestPlane_ExplosionFinishesAndWreckStaysInert(t *testing.T) {
	tick := newTestTick(0)
	p := newTestPlane(core.TeamEnemy)
	p.TakeDamage(0, 100)
	p.Explode(tick)

	finished := 0
	for i := 0; i < 60; i++ {
		if p.Animate(tick) {
			finished++
		}
	}
	assert.Equal(t, 1, finished)
	assert.False(t, p.Exploding())
	assert.Equal(t, core.AnimFlying, p.AnimState())
	assert.False(t, p.Live())
	assert.False(t, p.Shoot(tick), "a wreck never fires again")

	dl := render.NewDrawList()
	p.Draw(dl, 0)
	assert.Zero(t, dl.Len(), "a played-out wreck is not drawn")
}

func TestPlane_ShootCooldown(t *testing.T) {
	p := newTestPlane(core.TeamAlly)

	tick := newTestTick(0)
	require.True(t, p.Shoot(tick), "first shot is always allowed")
	assert.Len(t, p.Bullets, 1)
	assert.Equal(t, core.Vec2{X: 220, Y: 170}, p.Bullets[0].Pos())
	assert.Equal(t, core.AnimShooting, p.AnimState())
	assert.Equal(t, core.MuzzleParticles, tick.Particles.Count(ParticleMuzzle))
	assert.Equal(t, 1, tick.Timers.Len())

	tick.Now = core.FireCooldown
	assert.False(t, p.Shoot(tick), "cooldown is strict")
	tick.Now = core.FireCooldown + time.Millisecond
	assert.True(t, p.Shoot(tick))

	p.ApplyPowerUp(tick.Now, core.PowerUpRapidFire)
	tick.Now += core.FireCooldown/2 + time.Millisecond
	assert.True(t, p.Shoot(tick), "rapid fire halves the cooldown")
	assert.Len(t, p.Bullets, 3)
}

func TestPlane_RevertShootChecksSequence(t *testing.T) {
	p := newTestPlane(core.TeamAlly)
	tick := newTestTick(0)
	p.Shoot(tick)
	first := p.ShotSeq()
	tick.Now = time.Second
	p.Shoot(tick)

	assert.False(t, p.RevertShoot(first), "stale shot timer")
	assert.Equal(t, core.AnimShooting, p.AnimState())
	assert.True(t, p.RevertShoot(p.ShotSeq()))
	assert.Equal(t, core.AnimFlying, p.AnimState())
}

func TestPlane_RevertShootKeepsExplosion(t *testing.T) {
	p := newTestPlane(core.TeamAlly)
	tick := newTestTick(0)
	p.Shoot(tick)
	p.Explode(tick)
	assert.False(t, p.RevertShoot(p.ShotSeq()))
	assert.True(t, p.Exploding())
}

func TestPlane_UpdateDropsBulletsOffField(t *testing.T) {
	p := newTestPlane(core.TeamAlly)
	tick := newTestTick(0)
	p.Bullets = append(p.Bullets, NewBullet(core.TeamAlly, core.Vec2{X: 1195, Y: 10}))
	p.Bullets = append(p.Bullets, NewBullet(core.TeamAlly, core.Vec2{X: 500, Y: 10}))

	p.Update(tick)
	require.Len(t, p.Bullets, 1)
	assert.Equal(t, 508.0, p.Bullets[0].X)
}

func TestPlane_SmokeWhenBadlyDamaged(t *testing.T) {
	p := newTestPlane(core.TeamEnemy)
	tick := newTestTick(0)
	p.TakeDamage(0, 70)
	for i := 0; i < 100; i++ {
		p.Animate(tick)
	}
	n := tick.Particles.Count(ParticleSmoke)
	assert.Greater(t, n, 10)
	assert.Less(t, n, 60)
}

func TestPlane_DrawHealthBarColours(t *testing.T) {
	p := newTestPlane(core.TeamAlly)
	dl := render.NewDrawList()
	p.TakeDamage(0, 50)
	p.Draw(dl, 0)

	var fills []render.Command
	for _, c := range dl.Commands() {
		if c.Kind == render.KindFillRect {
			fills = append(fills, c)
		}
	}
	// flash, bar background, bar fill
	require.Len(t, fills, 3)
	assert.Equal(t, colHealthWarn, fills[2].Color)
	assert.Equal(t, 25.0, fills[2].W)
	assert.Equal(t, 1, dl.Count(render.LayerBackground, render.KindSprite))
}

func TestPlane_DrawShiftsActionClips(t *testing.T) {
	p := newTestPlane(core.TeamEnemy)
	tick := newTestTick(0)
	p.Shoot(tick)
	dl := render.NewDrawList()
	p.Draw(dl, 0)
	for _, c := range dl.Commands() {
		if c.Kind == render.KindSprite {
			assert.Equal(t, 156.0, c.Y)
			assert.True(t, c.Sprite.Flip)
			assert.Equal(t, 1, c.Sprite.Row)
			assert.Equal(t, 100, c.Sprite.CropBottom)
		}
	}
}

func TestParticlePool_DecayAndPrune(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := NewParticlePool(0)
	pool.Emit(ParticleMuzzle, core.Vec2{}, 5, rng)
	pool.Emit(ParticleSmoke, core.Vec2{}, 1, rng)
	require.Equal(t, 6, pool.Len())

	// muzzle decays at 0.08 per step
	for i := 0; i < 13; i++ {
		pool.Update()
	}
	assert.Equal(t, 1, pool.Len())
	assert.Equal(t, 1, pool.Count(ParticleSmoke))
}

func TestParticlePool_Capacity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := NewParticlePool(10)
	pool.Emit(ParticleExplosion, core.Vec2{}, 30, rng)
	assert.Equal(t, 10, pool.Len())
}

func TestParticle_Gravity(t *testing.T) {
	p := Particle{VY: 0, Life: 1}
	p.Update()
	p.Update()
	assert.InDelta(t, 0.1, p.Y, 1e-9)
	assert.InDelta(t, 0.2, p.VY, 1e-9)
}

func TestCloud_WrapsAtRightEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	field := core.Rect{W: 1200, H: 600}
	c := Cloud{X: 1299.9, Y: 10, W: 100, H: 50, Speed: 0.8, Depth: 0.5}
	c.Update(field, rng)
	assert.Equal(t, -100.0, c.X)
	assert.Less(t, c.Y, 360.0)
}

func TestPowerUp_DriftAndDespawn(t *testing.T) {
	p := NewPowerUp(1, -47, 100, rand.New(rand.NewSource(9)))
	assert.Less(t, int(p.Kind), int(core.PowerUpKindCount))
	p.Update()
	assert.False(t, p.Gone())
	p.Update()
	assert.True(t, p.Gone())
}

func TestArena_SpawnAndRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := NewArena(1200, 600, core.DefaultAtlas(), rng)
	assert.Len(t, a.Clouds, core.CloudCount)
	assert.Equal(t, core.Vec2{X: 100, Y: 285}, core.Vec2{X: a.Ally.X, Y: a.Ally.Y})

	e := a.SpawnEnemy(200)
	assert.Equal(t, 1050.0, e.X)
	assert.NotEqual(t, a.Ally.ID, e.ID)
	assert.Same(t, e, a.Plane(e.ID))

	pu := a.SpawnPowerUp(300, rng)
	assert.Equal(t, 1150.0, pu.X)

	assert.True(t, a.RemoveEnemy(e.ID))
	assert.False(t, a.RemoveEnemy(e.ID))
	assert.Nil(t, a.Plane(e.ID))
}

func TestArena_Reset(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := NewArena(1200, 600, core.DefaultAtlas(), rng)
	tick := newTestTick(0)
	tick.Particles = a.Particles

	a.SpawnEnemy(100)
	a.SpawnPowerUp(100, rng)
	a.Ally.Shoot(tick)
	a.Ally.TakeDamage(0, 40)
	a.Ally.Explode(tick)
	a.Ally.X = 400

	a.Reset()
	assert.Empty(t, a.Enemies)
	assert.Empty(t, a.PowerUps)
	assert.Zero(t, a.Particles.Len())
	assert.Empty(t, a.Ally.Bullets)
	assert.Equal(t, 100, a.Ally.Health)
	assert.True(t, a.Ally.Live())
	assert.Equal(t, core.AnimFlying, a.Ally.AnimState())
	assert.Equal(t, 100.0, a.Ally.X)
}

func TestArena_AllyBounds(t *testing.T) {
	a := NewArena(1200, 600, core.DefaultAtlas(), rand.New(rand.NewSource(1)))
	b := a.AllyBounds()
	a.Ally.Move(-500, -500, b)
	assert.Equal(t, 10.0, a.Ally.X)
	assert.Equal(t, 20.0, a.Ally.Y)
	a.Ally.Move(5000, 5000, b)
	assert.Equal(t, 600.0, a.Ally.X)
	assert.Equal(t, 600.0-128-20, a.Ally.Y)
}
