package sim

import (
	"github.com/rs/zerolog"

	"github.com/1siamBot/dogfight/engine/ai"
	"github.com/1siamBot/dogfight/engine/core"
)

// Option configures a Simulation at construction.
type Option func(*Simulation)

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.Seed = seed }
}

// WithPlayfield sets the playfield dimensions.
func WithPlayfield(w, h float64) Option {
	return func(s *Simulation) { s.width, s.height = w, h }
}

// WithRefreshRate sets the display refresh rate used for animation timing.
func WithRefreshRate(hz int) Option {
	return func(s *Simulation) {
		if hz > 0 {
			s.RefreshRate = hz
		}
	}
}

// WithHighScore seeds the persisted high score.
func WithHighScore(score int) Option {
	return func(s *Simulation) { s.highScore = score }
}

// WithDifficulty selects the enemy pilot level.
func WithDifficulty(d ai.Difficulty) Option {
	return func(s *Simulation) { s.difficulty = d }
}

// WithAtlas overrides the sprite sheet layout.
func WithAtlas(a *core.Atlas) Option {
	return func(s *Simulation) { s.atlas = a }
}

// WithLogger attaches a logger for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulation) { s.log = l }
}
