package ai

import (
	"math/rand"
	"testing"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/entity"
	"github.com/1siamBot/dogfight/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArena(seed int64) (*entity.Arena, *entity.Tick) {
	rng := rand.New(rand.NewSource(seed))
	a := entity.NewArena(1200, 600, core.DefaultAtlas(), rng)
	return a, &entity.Tick{
		RefreshRate: core.TargetFPS,
		Field:       a.Field,
		Rand:        rng,
		Particles:   a.Particles,
		Timers:      &core.Scheduler{},
		Bus:         core.NewEventBus(),
	}
}

func TestController_TracksAndDrifts(t *testing.T) {
	a, tick := newArena(1)
	a.Ally.Y = 300
	above := a.AddEnemy(800, 100)
	below := a.AddEnemy(800, 500)
	level := a.AddEnemy(800, 303)

	c := NewController(DiffMedium)
	c.FireChance = 0
	c.Update(tick, a)

	assert.InDelta(t, 101.8, above.Y, 1e-9)
	assert.InDelta(t, 498.2, below.Y, 1e-9)
	assert.Equal(t, 303.0, level.Y, "inside the dead zone")
	assert.InDelta(t, 797.6, above.X, 1e-9)
}

func TestController_EscapeRemovesAndCounts(t *testing.T) {
	a, tick := newArena(1)
	a.AddEnemy(-98, 100)
	keep := a.AddEnemy(500, 100)

	c := NewController(DiffMedium)
	c.FireChance = 0
	escaped := c.Update(tick, a)
	assert.Equal(t, 1, escaped)
	require.Len(t, a.Enemies, 1)
	assert.Same(t, keep, a.Enemies[0])
}

func TestController_WreckPastEdgeIsNotAnEscape(t *testing.T) {
	a, tick := newArena(1)
	wreck := a.AddEnemy(-98, 100)
	wreck.Explode(tick)

	c := NewController(DiffMedium)
	c.FireChance = 0
	assert.Zero(t, c.Update(tick, a))
	assert.Empty(t, a.Enemies, "the wreck still leaves the arena")
}

func TestController_FiresAtConfiguredRate(t *testing.T) {
	a, tick := newArena(7)
	e := a.AddEnemy(900, 100)
	c := NewController(DiffMedium)
	c.FireChance = 1
	c.Update(tick, a)
	assert.Len(t, e.Bullets, 1)
	assert.Equal(t, core.AnimShooting, e.AnimState())
}

func TestController_WreckDoesNotFire(t *testing.T) {
	a, tick := newArena(7)
	e := a.AddEnemy(900, 100)
	e.Explode(tick)
	c := NewController(DiffHard)
	c.FireChance = 1
	c.Update(tick, a)
	assert.Empty(t, e.Bullets)
}

func TestNewController_Difficulty(t *testing.T) {
	assert.InDelta(t, 0.01, NewController(DiffEasy).FireChance, 1e-9)
	assert.InDelta(t, 0.02, NewController(DiffMedium).FireChance, 1e-9)
	assert.InDelta(t, 0.03, NewController(DiffHard).FireChance, 1e-9)
	assert.Equal(t, DiffHard, ParseDifficulty("hard"))
	assert.Equal(t, DiffMedium, ParseDifficulty("nope"))
}

func TestAutopilot(t *testing.T) {
	a, _ := newArena(3)
	ap := NewAutopilot()

	first := ap.Next(a, false)
	assert.True(t, first.AnyKey, "leaves the idle screen")

	a.AddEnemy(900, 450)
	snap := ap.Next(a, false)
	assert.True(t, snap.IsHeld(input.ActionFire))
	assert.True(t, snap.IsHeld(input.ActionDown))

	over := ap.Next(a, true)
	assert.True(t, over.JustPressed(input.ActionRestart))
}
