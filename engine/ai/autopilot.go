package ai

import (
	"math"

	"github.com/1siamBot/dogfight/engine/entity"
	"github.com/1siamBot/dogfight/engine/input"
)

// Autopilot produces ally input for unattended runs: it lines up with the
// nearest live enemy, holds the trigger and restarts after a game over.
type Autopilot struct {
	// Slack is the vertical error tolerated before steering.
	Slack float64
	frame uint64
}

func NewAutopilot() *Autopilot { return &Autopilot{Slack: 8} }

// Next returns the input for the coming frame.
func (ap *Autopilot) Next(a *entity.Arena, gameOver bool) input.Snapshot {
	ap.frame++
	var snap input.Snapshot
	if ap.frame == 1 {
		snap.AnyKey = true
		return snap
	}
	if gameOver {
		snap.Pressed[input.ActionRestart] = true
		snap.Held[input.ActionRestart] = true
		snap.AnyKey = true
		return snap
	}

	ally := a.Ally
	muzzle := ally.Muzzle()
	var target *entity.Plane
	best := math.MaxFloat64
	for _, e := range a.Enemies {
		if !e.Live() {
			continue
		}
		if d := math.Abs(e.X - ally.X); d < best {
			best = d
			target = e
		}
	}
	if target == nil {
		return snap
	}

	aim := target.Box().Center().Y
	switch {
	case muzzle.Y < aim-ap.Slack:
		snap.Held[input.ActionDown] = true
	case muzzle.Y > aim+ap.Slack:
		snap.Held[input.ActionUp] = true
	}
	// keep clear of rams by backing off when close
	if target.X-(ally.X+ally.W) < 80 {
		snap.Held[input.ActionLeft] = true
	}
	snap.Held[input.ActionFire] = true
	return snap
}
