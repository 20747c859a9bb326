package audio

import (
	"math/rand"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/dogfight/engine/core"
)

type recordSink struct {
	streams []beep.Streamer
}

func (r *recordSink) Play(s beep.Streamer) { r.streams = append(r.streams, s) }

func TestSynth_EverySoundIsFiniteAndAudible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for id := Sound(0); id < SoundCount; id++ {
		pcm := PCM16(Synth(id, DefaultSampleRate, rng), DefaultSampleRate)
		require.NotEmpty(t, pcm, id.String())
		assert.Less(t, len(pcm), 4*DefaultSampleRate.N(MaxClip), "%s should end before the clip limit", id)
		assert.Zero(t, len(pcm)%4, id.String())

		peak := 0
		for i := 0; i+1 < len(pcm); i += 2 {
			v := int(int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8))
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		assert.Greater(t, peak, 1000, "%s is silent", id)
	}
}

func TestSynth_UnknownSoundIsSilent(t *testing.T) {
	assert.Empty(t, PCM16(Synth(SoundCount, DefaultSampleRate, nil), DefaultSampleRate))
}

func TestManager_RoutesEvents(t *testing.T) {
	sink := &recordSink{}
	m := NewManager(sink, DefaultSampleRate)
	m.FieldWidth = 1200
	bus := core.NewEventBus()
	m.Subscribe(bus)

	bus.Emit(core.Event{Type: core.EvtShotFired, Payload: core.ShotPayload{Team: core.TeamAlly, At: core.Vec2{X: 100}}})
	bus.Emit(core.Event{Type: core.EvtShotFired, Payload: core.ShotPayload{Team: core.TeamEnemy, At: core.Vec2{X: 1000}}})
	bus.Emit(core.Event{Type: core.EvtPlaneExploded, Payload: core.ExplosionPayload{Team: core.TeamEnemy}})
	bus.Emit(core.Event{Type: core.EvtPowerUpCollected, Payload: core.PowerUpPayload{Kind: core.PowerUpShield}})
	bus.Emit(core.Event{Type: core.EvtWaveCleared})
	bus.Emit(core.Event{Type: core.EvtGameOver, Payload: core.GameOverPayload{}})
	bus.Emit(core.Event{Type: core.EvtScoreChanged})
	bus.Dispatch()

	assert.Len(t, sink.streams, 6)
	for id := Sound(0); id < SoundCount; id++ {
		assert.Equal(t, 1, m.Played(id), id.String())
	}
}

func TestManager_MutedOrDisabled(t *testing.T) {
	sink := &recordSink{}
	m := NewManager(sink, DefaultSampleRate)
	m.SetVolume(-3)
	assert.Equal(t, 0.0, m.MasterVolume)
	m.PlaySFX(SndShot, 0)
	assert.Empty(t, sink.streams)

	m.SetVolume(1)
	m.Enabled = false
	m.PlaySFX(SndShot, 0)
	assert.Empty(t, sink.streams)

	assert.False(t, NewManager(nil, DefaultSampleRate).Enabled)
}

func TestManager_Pan(t *testing.T) {
	m := NewManager(&recordSink{}, DefaultSampleRate)
	assert.Zero(t, m.pan(100))
	m.FieldWidth = 1000
	assert.InDelta(t, -0.6, m.pan(0), 1e-9)
	assert.InDelta(t, 0, m.pan(500), 1e-9)
	assert.InDelta(t, 0.6, m.pan(5000), 1e-9)
}
