// Package audio synthesizes the game's sound effects with beep and routes
// them to a Sink picked by the frontend.
package audio

import (
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/1siamBot/dogfight/engine/core"
)

// Sound identifies a sound effect
type Sound int

const (
	SndShot Sound = iota
	SndEnemyShot
	SndExplosion
	SndPowerUp
	SndWaveCleared
	SndGameOver
	SoundCount
)

var soundNames = [SoundCount]string{"shot", "enemy_shot", "explosion", "powerup", "wave_cleared", "game_over"}

func (s Sound) String() string {
	if s >= 0 && s < SoundCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sink plays a finished streamer. Implementations mix concurrent sounds.
type Sink interface {
	Play(s beep.Streamer)
}

// Manager turns game events into sound effects.
type Manager struct {
	MasterVolume float64
	SFXVolume    float64
	Enabled      bool
	// FieldWidth is used to pan sounds by their x position. Zero disables panning.
	FieldWidth float64

	sink   Sink
	rate   beep.SampleRate
	rng    *rand.Rand
	played [SoundCount]int
}

func NewManager(sink Sink, rate beep.SampleRate) *Manager {
	return &Manager{
		MasterVolume: 1.0,
		SFXVolume:    0.8,
		Enabled:      sink != nil,
		sink:         sink,
		rate:         rate,
		rng:          rand.New(rand.NewSource(1)),
	}
}

// SetVolume sets master volume (0-1)
func (m *Manager) SetVolume(v float64) {
	m.MasterVolume = core.Clamp(v, 0, 1)
}

// Played returns how many times a sound was sent to the sink.
func (m *Manager) Played(id Sound) int {
	if id < 0 || id >= SoundCount {
		return 0
	}
	return m.played[id]
}

// PlaySFX plays a sound effect originating at playfield x.
func (m *Manager) PlaySFX(id Sound, x float64) {
	if !m.Enabled || m.sink == nil {
		return
	}
	vol := m.SFXVolume * m.MasterVolume
	if vol <= 0 {
		return
	}
	var s beep.Streamer = &effects.Volume{
		Streamer: Synth(id, m.rate, m.rng),
		Base:     2,
		Volume:   gain(vol),
	}
	if p := m.pan(x); p != 0 {
		s = &effects.Pan{Streamer: s, Pan: p}
	}
	m.played[id]++
	m.sink.Play(s)
}

// pan maps x across the field to [-0.6, 0.6]
func (m *Manager) pan(x float64) float64 {
	if m.FieldWidth <= 0 {
		return 0
	}
	return core.Clamp((x/m.FieldWidth)*2-1, -1, 1) * 0.6
}

// Subscribe hooks the manager to gameplay events.
func (m *Manager) Subscribe(bus *core.EventBus) {
	bus.On(core.EvtShotFired, func(e core.Event) {
		p, ok := e.Payload.(core.ShotPayload)
		if !ok {
			return
		}
		if p.Team == core.TeamAlly {
			m.PlaySFX(SndShot, p.At.X)
		} else {
			m.PlaySFX(SndEnemyShot, p.At.X)
		}
	})
	bus.On(core.EvtPlaneExploded, func(e core.Event) {
		if p, ok := e.Payload.(core.ExplosionPayload); ok {
			m.PlaySFX(SndExplosion, p.At.X)
		}
	})
	bus.On(core.EvtPowerUpCollected, func(core.Event) { m.PlaySFX(SndPowerUp, m.FieldWidth/2) })
	bus.On(core.EvtWaveCleared, func(core.Event) { m.PlaySFX(SndWaveCleared, m.FieldWidth/2) })
	bus.On(core.EvtGameOver, func(core.Event) { m.PlaySFX(SndGameOver, m.FieldWidth/2) })
}
