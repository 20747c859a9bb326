package core

import "math"

// AnimState is the plane animation state
type AnimState uint8

const (
	AnimFlying AnimState = iota
	AnimShooting
	AnimExploding
)

var animClips = [...]string{ClipFly, ClipShoot, ClipExplode}

// ClipName returns the atlas clip played in this state
func (s AnimState) ClipName() string { return animClips[s] }

func (s AnimState) String() string { return animClips[s] }

// Animator steps through atlas clips one refresh tick at a time.
type Animator struct {
	Atlas *Atlas
	State AnimState
	Frame int // index into the clip's frame list
	timer int
}

// NewAnimator starts in the flying clip
func NewAnimator(a *Atlas) Animator {
	return Animator{Atlas: a, State: AnimFlying}
}

// Enter switches clips and rewinds to the first frame.
func (an *Animator) Enter(s AnimState) {
	an.State = s
	an.Frame = 0
	an.timer = 0
}

// FrameDelay is the number of refresh ticks a frame of clip c is held for.
func FrameDelay(refreshRate int, c Clip) int {
	if c.FPS <= 0 {
		return math.MaxInt32
	}
	return int(math.Round(float64(refreshRate) / float64(c.FPS)))
}

// Advance moves the animation forward by one refresh tick. It returns true
// when a one-shot clip has just played its last frame; the caller decides
// what state follows.
func (an *Animator) Advance(refreshRate int) bool {
	clip := an.Atlas.Clip(an.State.ClipName())
	an.timer++
	if an.timer <= FrameDelay(refreshRate, clip) {
		return false
	}
	an.timer = 0
	next := (an.Frame + 1) % len(clip.Frames)
	if next == 0 && !clip.Loop {
		return true
	}
	an.Frame = next
	return false
}

// Cell returns the sheet column and row for the current frame.
func (an *Animator) Cell() (col, row int) {
	clip := an.Atlas.Clip(an.State.ClipName())
	return clip.Frames[an.Frame], clip.Row
}
