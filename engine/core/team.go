package core

import "image/color"

// Team is the side a plane or bullet belongs to
type Team uint8

const (
	TeamAlly Team = iota
	TeamEnemy
)

func (t Team) String() string {
	return TeamSpecs[t].Name
}

// Opponent returns the other side
func (t Team) Opponent() Team {
	if t == TeamAlly {
		return TeamEnemy
	}
	return TeamAlly
}

// TeamSpec holds every per-team difference. Code looks these up instead of
// branching on the team.
type TeamSpec struct {
	Name        string
	Sheet       string // sprite sheet basename under the assets dir
	Width       float64
	Height      float64
	Muzzle      Vec2
	Direction   float64 // bullet x direction
	Flip        bool
	CropBottom  int     // sheet pixels trimmed from each frame's bottom
	ActionShift float64 // sprite y offset while shooting or exploding
	HitDamage   int     // damage taken per bullet
	Fallback    color.NRGBA // body colour when the sheet is missing
}

var TeamSpecs = [...]TeamSpec{
	TeamAlly: {
		Name:        "British",
		Sheet:       "sopwith",
		Width:       160,
		Height:      128,
		Muzzle:      Vec2{120, 70},
		Direction:   1,
		CropBottom:  80,
		ActionShift: 45,
		HitDamage:   10,
		Fallback:    color.NRGBA{0x8b, 0x45, 0x13, 0xff},
	},
	TeamEnemy: {
		Name:        "German",
		Sheet:       "fokker",
		Width:       140,
		Height:      112,
		Muzzle:      Vec2{10, 70},
		Direction:   -1,
		Flip:        true,
		CropBottom:  100,
		ActionShift: 56,
		HitDamage:   20,
		Fallback:    color.NRGBA{0x69, 0x69, 0x69, 0xff},
	},
}

// Spec returns the team's table entry
func (t Team) Spec() *TeamSpec {
	return &TeamSpecs[t]
}

// PowerUpKind is the effect a pickup applies
type PowerUpKind uint8

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpRapidFire
	PowerUpShield
	PowerUpKindCount
)

var powerUpNames = [...]string{"health", "rapidfire", "shield"}

func (k PowerUpKind) String() string {
	if int(k) < len(powerUpNames) {
		return powerUpNames[k]
	}
	return "unknown"
}
