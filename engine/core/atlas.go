package core

import "fmt"

// Clip names used by the plane animation state machine
const (
	ClipFly     = "fly"
	ClipShoot   = "shoot"
	ClipExplode = "explode"
)

// Clip describes one animation row in a sprite sheet
type Clip struct {
	Row    int
	Frames []int // column indices, in play order
	FPS    int
	Loop   bool
}

// Atlas is the static layout of a sprite sheet
type Atlas struct {
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
	Clips       map[string]Clip
}

// DefaultAtlas is the 4x3 layout shared by both plane sheets.
func DefaultAtlas() *Atlas {
	return &Atlas{
		FrameWidth:  384,
		FrameHeight: 341,
		Columns:     4,
		Rows:        3,
		Clips: map[string]Clip{
			ClipFly:     {Row: 0, Frames: []int{0, 1, 2, 3}, FPS: 8, Loop: true},
			ClipShoot:   {Row: 1, Frames: []int{0, 1, 2, 3}, FPS: 12, Loop: true},
			ClipExplode: {Row: 2, Frames: []int{0, 1, 2, 3}, FPS: 10, Loop: false},
		},
	}
}

// Clip looks up a clip by name. Asking for a clip the atlas does not define
// is a programming error.
func (a *Atlas) Clip(name string) Clip {
	c, ok := a.Clips[name]
	if !ok {
		panic(fmt.Sprintf("atlas: unknown clip %q", name))
	}
	return c
}

// Cell returns the sheet pixel origin of a column/row pair.
func (a *Atlas) Cell(col, row int) (x, y int) {
	return col * a.FrameWidth, row * a.FrameHeight
}
