package input

// Action is a game control independent of the physical key
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionToggleFPS
	ActionRestart
	ActionCount
)

var actionNames = [...]string{"up", "down", "left", "right", "fire", "pause", "fps", "restart"}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}

// State accumulates key events between frames. Backends call Press and
// Release as events arrive; the driver takes one Snapshot per frame.
type State struct {
	held    [ActionCount]bool
	pressed [ActionCount]bool
	anyKey  bool
}

func NewState() *State { return &State{} }

// Press marks a mapped action as held and records the edge.
func (s *State) Press(a Action) {
	if a >= ActionCount {
		return
	}
	if !s.held[a] {
		s.pressed[a] = true
	}
	s.held[a] = true
	s.anyKey = true
}

// Release clears a held action
func (s *State) Release(a Action) {
	if a < ActionCount {
		s.held[a] = false
	}
}

// PressUnmapped records a key press that maps to no action. It still
// counts as "any key" for leaving the idle screen.
func (s *State) PressUnmapped() { s.anyKey = true }

// ReleaseAll clears every held action
func (s *State) ReleaseAll() {
	s.held = [ActionCount]bool{}
}

// Snapshot freezes the current levels and edges and clears the edges.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{Held: s.held, Pressed: s.pressed, AnyKey: s.anyKey}
	s.pressed = [ActionCount]bool{}
	s.anyKey = false
	return snap
}

// Snapshot is the immutable input seen by one frame.
type Snapshot struct {
	Held    [ActionCount]bool
	Pressed [ActionCount]bool
	AnyKey  bool
}

func (s Snapshot) IsHeld(a Action) bool      { return a < ActionCount && s.Held[a] }
func (s Snapshot) JustPressed(a Action) bool { return a < ActionCount && s.Pressed[a] }

// Bits packs the snapshot for recording: held in the low byte, pressed in
// the next byte and the any-key flag in bit 16.
func (s Snapshot) Bits() uint32 {
	var b uint32
	for a := Action(0); a < ActionCount; a++ {
		if s.Held[a] {
			b |= 1 << a
		}
		if s.Pressed[a] {
			b |= 1 << (8 + a)
		}
	}
	if s.AnyKey {
		b |= 1 << 16
	}
	return b
}

// FromBits is the inverse of Snapshot.Bits
func FromBits(b uint32) Snapshot {
	var s Snapshot
	for a := Action(0); a < ActionCount; a++ {
		s.Held[a] = b&(1<<a) != 0
		s.Pressed[a] = b&(1<<(8+a)) != 0
	}
	s.AnyKey = b&(1<<16) != 0
	return s
}

// ForRune maps a typed character to an action, for backends that only
// see characters.
func ForRune(r rune) (Action, bool) {
	switch r {
	case 'w', 'W':
		return ActionUp, true
	case 's', 'S':
		return ActionDown, true
	case 'a', 'A':
		return ActionLeft, true
	case 'd', 'D':
		return ActionRight, true
	case ' ':
		return ActionFire, true
	case 'p', 'P':
		return ActionPause, true
	case 'f', 'F':
		return ActionToggleFPS, true
	case 'r', 'R':
		return ActionRestart, true
	}
	return 0, false
}
