// Package ebiteninput feeds ebiten keyboard state into an input.State.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/dogfight/engine/input"
)

// Bindings maps physical keys to actions
var Bindings = map[ebiten.Key]input.Action{
	ebiten.KeyW:     input.ActionUp,
	ebiten.KeyUp:    input.ActionUp,
	ebiten.KeyS:     input.ActionDown,
	ebiten.KeyDown:  input.ActionDown,
	ebiten.KeyA:     input.ActionLeft,
	ebiten.KeyLeft:  input.ActionLeft,
	ebiten.KeyD:     input.ActionRight,
	ebiten.KeyRight: input.ActionRight,
	ebiten.KeySpace: input.ActionFire,
	ebiten.KeyP:     input.ActionPause,
	ebiten.KeyF:     input.ActionToggleFPS,
	ebiten.KeyR:     input.ActionRestart,
}

// Source polls ebiten once per Update.
type Source struct {
	keys []ebiten.Key
}

func NewSource() *Source { return &Source{} }

// Poll pushes this tick's presses and releases into st.
func (src *Source) Poll(st *input.State) {
	src.keys = inpututil.AppendJustPressedKeys(src.keys[:0])
	for _, k := range src.keys {
		if a, ok := Bindings[k]; ok {
			st.Press(a)
		} else {
			st.PressUnmapped()
		}
	}
	src.keys = inpututil.AppendJustReleasedKeys(src.keys[:0])
	for _, k := range src.keys {
		if a, ok := Bindings[k]; ok && !anyHeld(a) {
			st.Release(a)
		}
	}
}

// anyHeld reports whether another key bound to a is still down.
func anyHeld(a input.Action) bool {
	for k, b := range Bindings {
		if b == a && ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
