package termr

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/dogfight/engine/input"
)

// DefaultHold covers the typical keyboard auto-repeat delay.
const DefaultHold = 450 * time.Millisecond

// Keys feeds terminal key events into an input.State. Terminals report
// presses and auto-repeats but no releases, so an action counts as held
// until Hold passes without a repeat.
type Keys struct {
	Hold time.Duration

	state *input.State
	last  [input.ActionCount]time.Duration
	held  [input.ActionCount]bool
}

func NewKeys(st *input.State) *Keys {
	return &Keys{Hold: DefaultHold, state: st}
}

// Handle processes one key event at time now. It returns false when the
// player asked to quit.
func (k *Keys) Handle(ev *tcell.EventKey, now time.Duration) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		k.press(input.ActionUp, now)
	case tcell.KeyDown:
		k.press(input.ActionDown, now)
	case tcell.KeyLeft:
		k.press(input.ActionLeft, now)
	case tcell.KeyRight:
		k.press(input.ActionRight, now)
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
		if a, ok := input.ForRune(ev.Rune()); ok {
			k.press(a, now)
		} else {
			k.state.PressUnmapped()
		}
	default:
		k.state.PressUnmapped()
	}
	return true
}

func (k *Keys) press(a input.Action, now time.Duration) {
	k.state.Press(a)
	switch a {
	case input.ActionPause, input.ActionToggleFPS, input.ActionRestart:
		// toggles only need the edge
		k.state.Release(a)
		return
	}
	k.last[a] = now
	k.held[a] = true
}

// Expire releases actions that have not repeated within Hold.
func (k *Keys) Expire(now time.Duration) {
	for a := input.Action(0); a < input.ActionCount; a++ {
		if k.held[a] && now-k.last[a] >= k.Hold {
			k.held[a] = false
			k.state.Release(a)
		}
	}
}
