package sim

import (
	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/entity"
	"github.com/1siamBot/dogfight/engine/input"
	"github.com/1siamBot/dogfight/engine/systems"
)

// step advances one running frame: ally control, AI, waves, spawns,
// movement, then collisions.
func (s *Simulation) step(in input.Snapshot, t *entity.Tick) {
	st, a := s.State, s.Arena
	ally := a.Ally

	if ally.Live() {
		var dx, dy float64
		if in.IsHeld(input.ActionUp) {
			dy -= ally.Speed
		}
		if in.IsHeld(input.ActionDown) {
			dy += ally.Speed
		}
		if in.IsHeld(input.ActionLeft) {
			dx -= ally.Speed
		}
		if in.IsHeld(input.ActionRight) {
			dx += ally.Speed
		}
		ally.Move(dx, dy, a.AllyBounds())
		if in.IsHeld(input.ActionFire) {
			ally.Shoot(t)
		}
	}
	ally.Update(t)

	if escaped := s.Pilot.Update(t, a); escaped > 0 {
		st.EnemyScore += escaped
		payload := core.ScorePayload{Ally: st.AllyScore, Enemy: st.EnemyScore}
		s.emit(core.EvtEnemyEscaped, payload)
		s.emit(core.EvtScoreChanged, payload)
	}

	s.Waves.CheckProgress(st, a, t)
	s.Waves.Spawn(st, a, t)

	for _, e := range a.Enemies {
		e.Update(t)
	}
	a.UpdatePowerUps()

	s.Collisions.Resolve(st, a, t)
}

// fireTimers runs every timer that has come due. A timer armed for an
// earlier session, a shot that has been superseded or an entity that is
// gone does nothing.
func (s *Simulation) fireTimers(t *entity.Tick) {
	st, a := s.State, s.Arena
	for _, tm := range s.Timers.PopDue(st.Clock) {
		if tm.Generation != st.Generation {
			continue
		}
		switch tm.Kind {
		case core.TimerRevertShoot:
			if p := a.Plane(tm.Entity); p != nil {
				p.RevertShoot(tm.Seq)
			}
		case core.TimerRemoveEnemy:
			a.RemoveEnemy(tm.Entity)
		case core.TimerGameOver:
			if st.Phase != core.PhaseRunning {
				continue
			}
			if a.Ally.Exploding() {
				s.Timers.After(st.Clock, core.GameOverRetry, tm)
				continue
			}
			s.finish(tm.Reason)
		case core.TimerClearStatus:
			if tm.Seq == st.StatusSeq {
				systems.Announce(st, t, core.StatusGoodLuck, 0)
			}
		}
	}
}

func (s *Simulation) finish(reason core.GameOverReason) {
	st := s.State
	st.Finish(reason)
	s.emit(core.EvtGameOver, core.GameOverPayload{
		Reason:       reason,
		FinalScore:   st.FinalScore,
		NewHighScore: st.NewHighScore,
	})
	s.log.Info().
		Str("reason", reason.String()).
		Int("score", st.FinalScore).
		Int("wave", st.Wave).
		Bool("newHigh", st.NewHighScore).
		Msg("game over")
}

// animate advances sprite clips and visual timers for every plane.
func (s *Simulation) animate(t *entity.Tick) {
	s.Arena.Ally.Animate(t)
	for _, e := range s.Arena.Enemies {
		e.Animate(t)
	}
}
