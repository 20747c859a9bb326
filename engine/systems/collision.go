package systems

import (
	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/entity"
)

// CollisionReport counts what one Resolve pass did.
type CollisionReport struct {
	Hits      int // ally bullets that struck an enemy
	Kills     int
	AllyHits  int // enemy bullets that struck the ally
	Crashes   int // enemies rammed by the ally
	Collected int
}

// CollisionSystem resolves bullet hits, rams and pickups once per step.
type CollisionSystem struct {
	Totals CollisionReport
}

// Resolve runs every collision check for the current positions.
func (s *CollisionSystem) Resolve(st *core.GameState, a *entity.Arena, t *entity.Tick) CollisionReport {
	var r CollisionReport
	s.allyFire(st, a, t, &r)
	s.enemyFire(a, t, &r)
	s.rams(a, t, &r)
	s.pickups(a, t, &r)

	s.Totals.Hits += r.Hits
	s.Totals.Kills += r.Kills
	s.Totals.AllyHits += r.AllyHits
	s.Totals.Crashes += r.Crashes
	s.Totals.Collected += r.Collected
	return r
}

func (s *CollisionSystem) allyFire(st *core.GameState, a *entity.Arena, t *entity.Tick, r *CollisionReport) {
	ally := a.Ally
	damage := core.TeamEnemy.Spec().HitDamage
	for bi := len(ally.Bullets) - 1; bi >= 0; bi-- {
		pos := ally.Bullets[bi].Pos()
		for pi := len(a.Enemies) - 1; pi >= 0; pi-- {
			enemy := a.Enemies[pi]
			if !enemy.Live() || !enemy.Box().Contains(pos) {
				continue
			}
			ally.RemoveBullet(bi)
			r.Hits++
			enemy.TakeDamage(t.Now, damage)
			if enemy.Destroyed() {
				s.kill(st, a, t, enemy)
				r.Kills++
			}
			break
		}
	}
}

func (s *CollisionSystem) kill(st *core.GameState, a *entity.Arena, t *entity.Tick, enemy *entity.Plane) {
	enemy.Explode(t)
	t.Timers.After(t.Now, core.EnemyRemoveWait, core.Timer{
		Kind:       core.TimerRemoveEnemy,
		Entity:     enemy.ID,
		Generation: t.Generation,
	})

	newHigh := st.AwardKill()
	emit(t, core.EvtScoreChanged, core.ScorePayload{Ally: st.AllyScore, Enemy: st.EnemyScore})
	if newHigh {
		emit(t, core.EvtHighScoreChanged, core.HighScorePayload{Score: st.HighScore})
	}

	if t.Rand.Float64() < core.PowerUpDropOdds {
		a.SpawnPowerUp(PowerUpY(a.Field, t), t.Rand)
	}
}

func (s *CollisionSystem) enemyFire(a *entity.Arena, t *entity.Tick, r *CollisionReport) {
	ally := a.Ally
	damage := core.TeamAlly.Spec().HitDamage
	for _, enemy := range a.Enemies {
		for bi := len(enemy.Bullets) - 1; bi >= 0; bi-- {
			if !ally.Live() {
				return
			}
			if !ally.Box().Contains(enemy.Bullets[bi].Pos()) {
				continue
			}
			enemy.RemoveBullet(bi)
			r.AllyHits++
			ally.TakeDamage(t.Now, damage)
			if ally.Destroyed() {
				ally.Explode(t)
				armGameOver(t, ally.ID, core.ReasonShotDown)
			}
		}
	}
}

func (s *CollisionSystem) rams(a *entity.Arena, t *entity.Tick, r *CollisionReport) {
	ally := a.Ally
	if !ally.Live() {
		return
	}
	box := ally.Box()
	for _, enemy := range a.Enemies {
		if !enemy.Live() || !box.Overlaps(enemy.Box()) {
			continue
		}
		enemy.Explode(t)
		t.Timers.After(t.Now, core.EnemyRemoveWait, core.Timer{
			Kind:       core.TimerRemoveEnemy,
			Entity:     enemy.ID,
			Generation: t.Generation,
		})
		if ally.Explode(t) {
			armGameOver(t, ally.ID, core.ReasonCollision)
		}
		r.Crashes++
	}
}

func (s *CollisionSystem) pickups(a *entity.Arena, t *entity.Tick, r *CollisionReport) {
	ally := a.Ally
	if !ally.Live() {
		return
	}
	box := ally.Box()
	for i := len(a.PowerUps) - 1; i >= 0; i-- {
		p := a.PowerUps[i]
		if p.Collected || !box.Overlaps(p.Box()) {
			continue
		}
		p.Collected = true
		ally.ApplyPowerUp(t.Now, p.Kind)
		a.PowerUps = append(a.PowerUps[:i], a.PowerUps[i+1:]...)
		r.Collected++
		emit(t, core.EvtPowerUpCollected, core.PowerUpPayload{Kind: p.Kind})
	}
}

func armGameOver(t *entity.Tick, ally core.EntityID, reason core.GameOverReason) {
	t.Timers.After(t.Now, core.GameOverWait, core.Timer{
		Kind:       core.TimerGameOver,
		Entity:     ally,
		Generation: t.Generation,
		Reason:     reason,
	})
}

func emit(t *entity.Tick, typ core.EventType, payload interface{}) {
	if t.Bus != nil {
		t.Bus.Emit(core.Event{Type: typ, Frame: t.Frame, Payload: payload})
	}
}
