package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_QueuedUntilDispatch(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.On(EvtScoreChanged, func(e Event) { got = append(got, e.Type) })
	bus.On(EvtGameOver, func(e Event) { got = append(got, e.Type) })

	bus.Emit(Event{Type: EvtScoreChanged, Payload: ScorePayload{Ally: 10}})
	bus.Emit(Event{Type: EvtWaveChanged})
	bus.Emit(Event{Type: EvtGameOver})
	assert.Empty(t, got)
	assert.Equal(t, 3, bus.Pending())

	bus.Dispatch()
	assert.Equal(t, []EventType{EvtScoreChanged, EvtGameOver}, got)
	assert.Zero(t, bus.Pending())
}

func TestEventBus_EmitDuringDispatchIsDeferred(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	bus.On(EvtWaveCleared, func(e Event) {
		calls++
		bus.Emit(Event{Type: EvtWaveChanged})
	})
	seen := 0
	bus.On(EvtWaveChanged, func(e Event) { seen++ })

	bus.Emit(Event{Type: EvtWaveCleared})
	bus.Dispatch()
	assert.Equal(t, 1, calls)
	assert.Zero(t, seen)
	assert.Equal(t, 1, bus.Pending())

	bus.Dispatch()
	assert.Equal(t, 1, seen)
}

func TestEventBus_OnAll(t *testing.T) {
	bus := NewEventBus()
	n := 0
	bus.OnAll(func(Event) { n++ })
	bus.Emit(Event{Type: EvtShotFired})
	bus.Emit(Event{Type: EvtStatusChanged})
	bus.Dispatch()
	assert.Equal(t, 2, n)
	assert.Equal(t, "shot_fired", EvtShotFired.String())
}
