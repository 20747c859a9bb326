package entity

import (
	"math/rand"
	"time"

	"github.com/1siamBot/dogfight/engine/core"
)

// Tick is the per-frame context handed to entity updates. Entities never
// reach for globals; everything shared arrives here.
type Tick struct {
	Now         time.Duration // simulation clock
	Frame       uint64
	RefreshRate int
	Field       core.Rect
	Generation  uint64

	Rand      *rand.Rand
	Particles *ParticlePool
	Timers    *core.Scheduler
	Bus       *core.EventBus
}

func (t *Tick) emit(typ core.EventType, payload interface{}) {
	if t.Bus == nil {
		return
	}
	t.Bus.Emit(core.Event{Type: typ, Frame: t.Frame, Payload: payload})
}
