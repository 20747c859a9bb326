package core

// Event represents a game event
type Event struct {
	Type    EventType
	Frame   uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtScoreChanged EventType = iota
	EvtHighScoreChanged
	EvtWaveChanged
	EvtWaveCleared
	EvtGameOver
	EvtGameStarted
	EvtGameReset
	EvtShotFired
	EvtPlaneExploded
	EvtPowerUpCollected
	EvtPausedChanged
	EvtEnemyEscaped
	EvtStatusChanged
)

var eventNames = [...]string{
	"score_changed", "high_score_changed", "wave_changed", "wave_cleared",
	"game_over", "game_started", "game_reset", "shot_fired", "plane_exploded",
	"powerup_collected", "paused_changed", "enemy_escaped", "status_changed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// ScorePayload accompanies EvtScoreChanged and EvtEnemyEscaped
type ScorePayload struct {
	Ally  int
	Enemy int
}

// HighScorePayload accompanies EvtHighScoreChanged
type HighScorePayload struct {
	Score int
}

// WavePayload accompanies EvtWaveChanged and EvtWaveCleared
type WavePayload struct {
	Wave     int
	Target   int
	Defeated int
}

// GameOverPayload accompanies EvtGameOver
type GameOverPayload struct {
	Reason       GameOverReason
	FinalScore   int
	NewHighScore bool
}

// ShotPayload accompanies EvtShotFired
type ShotPayload struct {
	Team Team
	At   Vec2
}

// ExplosionPayload accompanies EvtPlaneExploded
type ExplosionPayload struct {
	ID   EntityID
	Team Team
	At   Vec2
}

// PowerUpPayload accompanies EvtPowerUpCollected
type PowerUpPayload struct {
	Kind PowerUpKind
}

// PausedPayload accompanies EvtPausedChanged
type PausedPayload struct {
	Paused bool
}

// StatusPayload accompanies EvtStatusChanged
type StatusPayload struct {
	Text string
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// OnAll registers one handler for every event type
func (eb *EventBus) OnAll(h EventHandler) {
	for t := range eventNames {
		eb.On(EventType(t), h)
	}
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events. Handlers may emit; those events are
// delivered on the next Dispatch.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	if eb.queue == nil {
		eb.queue = queue[:0]
	}
}
