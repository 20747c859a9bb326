package systems

import (
	"fmt"
	"time"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/entity"
)

// MaxEnemies is how many enemies may be airborne at once in a wave.
func MaxEnemies(wave int) int {
	return min(core.MaxEnemiesCap, 1+wave/2)
}

// SpawnOdds is the per-step chance of launching an enemy.
func SpawnOdds(wave int) float64 {
	return core.SpawnOddsBase + float64(wave)*core.SpawnOddsStep
}

// WaveTarget is the number of kills needed to clear wave n (n > 1).
func WaveTarget(wave int) int {
	return core.WaveTargetBase + wave
}

// EnemyY picks a launch height in [50, h-100).
func EnemyY(field core.Rect, t *entity.Tick) float64 {
	return 50 + t.Rand.Float64()*(field.H-150)
}

// PowerUpY picks a pickup height in [50, h-50).
func PowerUpY(field core.Rect, t *entity.Tick) float64 {
	return 50 + t.Rand.Float64()*(field.H-100)
}

// WaveDirector launches enemies and pickups and advances waves.
type WaveDirector struct{}

// Begin starts wave one and launches the first enemy.
func (d *WaveDirector) Begin(st *core.GameState, a *entity.Arena, t *entity.Tick) {
	st.BeginWave(1, core.FirstWaveTarget)
	Announce(st, t, core.StatusGoodLuck, 0)
	a.SpawnEnemy(EnemyY(a.Field, t))
	emit(t, core.EvtWaveChanged, core.WavePayload{Wave: st.Wave, Target: st.EnemiesInWave})
}

// CheckProgress advances the wave once enough enemies are down and the sky
// is empty. An enemy still airborne, wrecked or escaping holds the wave.
func (d *WaveDirector) CheckProgress(st *core.GameState, a *entity.Arena, t *entity.Tick) bool {
	if st.EnemiesDefeated < st.EnemiesInWave || len(a.Enemies) > 0 {
		return false
	}
	emit(t, core.EvtWaveCleared, core.WavePayload{Wave: st.Wave, Target: st.EnemiesInWave, Defeated: st.EnemiesDefeated})
	next := st.Wave + 1
	st.BeginWave(next, WaveTarget(next))
	Announce(st, t, fmt.Sprintf("Wave %d - Get Ready!", next), core.StatusTime)
	emit(t, core.EvtWaveChanged, core.WavePayload{Wave: st.Wave, Target: st.EnemiesInWave})
	return true
}

// Spawn rolls for a new enemy and a new pickup.
func (d *WaveDirector) Spawn(st *core.GameState, a *entity.Arena, t *entity.Tick) (enemy, powerUp bool) {
	if t.Rand.Float64() < SpawnOdds(st.Wave) && len(a.Enemies) < MaxEnemies(st.Wave) {
		a.SpawnEnemy(EnemyY(a.Field, t))
		enemy = true
	}
	if t.Rand.Float64() < core.PowerUpSpawnOdds && len(a.PowerUps) == 0 {
		a.SpawnPowerUp(PowerUpY(a.Field, t), t.Rand)
		powerUp = true
	}
	return enemy, powerUp
}

// Announce sets the status line. A positive ttl arms a timer that puts the
// default line back unless another status replaced this one first.
func Announce(st *core.GameState, t *entity.Tick, text string, ttl time.Duration) {
	seq := st.SetStatus(text)
	emit(t, core.EvtStatusChanged, core.StatusPayload{Text: text})
	if ttl > 0 && t.Timers != nil {
		t.Timers.After(t.Now, ttl, core.Timer{
			Kind:       core.TimerClearStatus,
			Seq:        seq,
			Generation: t.Generation,
		})
	}
}
