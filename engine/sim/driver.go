package sim

import (
	"time"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/input"
	"github.com/1siamBot/dogfight/engine/render"
	"github.com/1siamBot/dogfight/engine/systems"
	"github.com/1siamBot/dogfight/engine/ui"
)

// Driver runs the idle/running/paused/game-over state machine and feeds the
// simulation one frame per display refresh.
type Driver struct {
	sim *Simulation
	hud *ui.HUD
}

// NewDriver builds a simulation from opts and wraps it.
func NewDriver(opts ...Option) *Driver {
	return &Driver{sim: New(opts...), hud: ui.NewHUD()}
}

// Sim exposes the simulation context
func (d *Driver) Sim() *Simulation { return d.sim }

// Bus is where collaborators subscribe to game events
func (d *Driver) Bus() *core.EventBus { return d.sim.Bus }

// State is the current game state
func (d *Driver) State() *core.GameState { return d.sim.State }

// Frame processes one display refresh. delta is the wall-clock time since
// the previous frame; in is the input captured for this frame.
func (d *Driver) Frame(delta time.Duration, in input.Snapshot) {
	s := d.sim
	st := s.State
	st.Frame++
	st.FPS.Push(delta)

	d.handleKeys(in)

	if st.Phase != core.PhasePaused {
		s.Arena.UpdateClouds(s.Rand)
	}
	if st.Phase == core.PhaseRunning {
		st.Clock += min(delta, core.MaxFrameDelta)
		t := s.tick()
		s.fireTimers(t)
		if st.Phase == core.PhaseRunning {
			s.step(in, t)
		}
	}
	if st.Phase != core.PhasePaused {
		s.animate(s.tick())
	}
	s.Arena.Particles.Update()
	s.Bus.Dispatch()
}

func (d *Driver) handleKeys(in input.Snapshot) {
	st := d.sim.State
	switch st.Phase {
	case core.PhaseIdle:
		if in.AnyKey {
			d.Start()
		}
	case core.PhaseRunning, core.PhasePaused:
		if in.JustPressed(input.ActionPause) {
			d.TogglePause()
		}
	case core.PhaseGameOver:
		if in.JustPressed(input.ActionRestart) {
			d.Restart()
		}
	}
	if in.JustPressed(input.ActionToggleFPS) {
		st.ShowFPS = !st.ShowFPS
	}
}

// Start leaves the idle screen and launches wave one.
func (d *Driver) Start() {
	s := d.sim
	if s.State.Phase != core.PhaseIdle {
		return
	}
	s.State.Phase = core.PhaseRunning
	s.Waves.Begin(s.State, s.Arena, s.tick())
	s.emit(core.EvtGameStarted, core.WavePayload{Wave: s.State.Wave, Target: s.State.EnemiesInWave})
	s.log.Info().Int64("seed", s.Seed).Msg("game started")
}

// TogglePause pauses or resumes a running game.
func (d *Driver) TogglePause() {
	st := d.sim.State
	switch st.Phase {
	case core.PhaseRunning:
		st.Phase = core.PhasePaused
	case core.PhasePaused:
		st.Phase = core.PhaseRunning
	default:
		return
	}
	d.sim.emit(core.EvtPausedChanged, core.PausedPayload{Paused: st.Phase == core.PhasePaused})
}

// Restart begins a fresh session after a game over. Timers armed in the
// previous session are dropped and would be ignored anyway.
func (d *Driver) Restart() {
	s := d.sim
	if s.State.Phase != core.PhaseGameOver {
		return
	}
	s.Arena.Reset()
	s.Timers.Clear()
	s.State.Reset()
	s.State.Phase = core.PhaseRunning
	systems.Announce(s.State, s.tick(), core.StatusGoodLuck, 0)
	s.emit(core.EvtGameReset, core.ScorePayload{})
	s.emit(core.EvtWaveChanged, core.WavePayload{Wave: s.State.Wave, Target: s.State.EnemiesInWave})
	s.log.Info().Uint64("generation", s.State.Generation).Msg("game restarted")
}

// View snapshots the state the HUD draws from.
func (d *Driver) View() ui.View {
	s := d.sim
	st, ally := s.State, s.Arena.Ally
	return ui.View{
		Width:        s.width,
		Height:       s.height,
		Phase:        st.Phase,
		AllyScore:    st.AllyScore,
		EnemyScore:   st.EnemyScore,
		HighScore:    st.HighScore,
		Wave:         st.Wave,
		Target:       st.EnemiesInWave,
		Defeated:     st.EnemiesDefeated,
		Status:       st.Status,
		ShieldLeft:   ally.ShieldLeft(st.Clock),
		RapidLeft:    ally.RapidFireLeft(st.Clock),
		ShowFPS:      st.ShowFPS,
		FPS:          st.FPS.FPS,
		Reason:       st.Reason,
		FinalScore:   st.FinalScore,
		NewHighScore: st.NewHighScore,
	}
}

var (
	skyTop      = render.Hex(0x87ceeb)
	skyBottom   = render.Hex(0xe0f6ff)
	groundTop   = render.Hex(0x8fbc8f)
	groundBelow = render.Hex(0x556b2f)
)

// Render appends the whole frame to dl, back to front.
func (d *Driver) Render(dl *render.DrawList) {
	s := d.sim
	a, now := s.Arena, s.State.Clock
	w, h := s.width, s.height

	dl.SetLayer(render.LayerBackground)
	dl.Gradient(0, 0, w, h*0.7, skyTop, skyBottom)
	dl.Gradient(0, h*0.7, w, h*0.3, groundTop, groundBelow)

	dl.SetLayer(render.LayerClouds)
	for i := range a.Clouds {
		a.Clouds[i].Draw(dl)
	}

	dl.SetLayer(render.LayerAlly)
	a.Ally.Draw(dl, now)
	dl.SetLayer(render.LayerAllyBullets)
	a.Ally.DrawBullets(dl)

	dl.SetLayer(render.LayerEnemies)
	for _, e := range a.Enemies {
		e.Draw(dl, now)
		e.DrawBullets(dl)
	}

	dl.SetLayer(render.LayerPowerUps)
	for _, p := range a.PowerUps {
		p.Draw(dl)
	}

	dl.SetLayer(render.LayerParticles)
	a.Particles.Draw(dl)

	d.hud.Draw(dl, d.View())
}
