// Package sim runs the dogfight: it owns the simulation context, steps it
// once per display frame and turns the result into draw commands.
package sim

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/1siamBot/dogfight/engine/ai"
	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/entity"
	"github.com/1siamBot/dogfight/engine/systems"
)

const (
	DefaultWidth  = 1200
	DefaultHeight = 600
)

// Simulation is the explicit context every step function works on.
type Simulation struct {
	State       *core.GameState
	Arena       *entity.Arena
	Bus         *core.EventBus
	Timers      *core.Scheduler
	Rand        *rand.Rand
	Collisions  *systems.CollisionSystem
	Waves       *systems.WaveDirector
	Pilot       *ai.Controller
	RefreshRate int
	Seed        int64

	width, height float64
	highScore     int
	difficulty    ai.Difficulty
	atlas         *core.Atlas
	log           zerolog.Logger
}

// New builds an idle simulation.
func New(opts ...Option) *Simulation {
	s := &Simulation{
		RefreshRate: core.TargetFPS,
		Seed:        1,
		width:       DefaultWidth,
		height:      DefaultHeight,
		difficulty:  ai.DiffMedium,
		log:         zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.atlas == nil {
		s.atlas = core.DefaultAtlas()
	}
	s.Rand = rand.New(rand.NewSource(s.Seed)) // #nosec G404 -- gameplay randomness
	s.Bus = core.NewEventBus()
	s.Timers = &core.Scheduler{}
	s.State = core.NewGameState(s.highScore)
	s.Arena = entity.NewArena(s.width, s.height, s.atlas, s.Rand)
	s.Collisions = &systems.CollisionSystem{}
	s.Waves = &systems.WaveDirector{}
	s.Pilot = ai.NewController(s.difficulty)
	return s
}

// Width and Height return the playfield size
func (s *Simulation) Width() float64  { return s.width }
func (s *Simulation) Height() float64 { return s.height }

// Logger returns the simulation's logger
func (s *Simulation) Logger() zerolog.Logger { return s.log }

// tick builds the entity context for the current frame.
func (s *Simulation) tick() *entity.Tick {
	return &entity.Tick{
		Now:         s.State.Clock,
		Frame:       s.State.Frame,
		RefreshRate: s.RefreshRate,
		Field:       s.Arena.Field,
		Generation:  s.State.Generation,
		Rand:        s.Rand,
		Particles:   s.Arena.Particles,
		Timers:      s.Timers,
		Bus:         s.Bus,
	}
}

func (s *Simulation) emit(typ core.EventType, payload interface{}) {
	s.Bus.Emit(core.Event{Type: typ, Frame: s.State.Frame, Payload: payload})
}
