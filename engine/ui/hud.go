package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/render"
)

var (
	hudWhite   = render.Hex(0xffffff)
	hudCyan    = render.Hex(0x00ffff)
	hudMagenta = render.Hex(0xff00ff)
	hudGold    = render.Hex(0xffd700)
	hudRed     = render.Hex(0xff4040)
	hudShade   = color.NRGBA{0, 0, 0, 128}
	hudPanel   = color.NRGBA{20, 20, 40, 220}
	hudBar     = color.NRGBA{0, 0, 0, 140}
)

// View is everything the HUD needs from one frame.
type View struct {
	Width, Height float64
	Phase         core.Phase

	AllyScore  int
	EnemyScore int
	HighScore  int
	Wave       int
	Target     int
	Defeated   int
	Status     string

	ShieldLeft time.Duration
	RapidLeft  time.Duration

	ShowFPS bool
	FPS     int

	Reason       core.GameOverReason
	FinalScore   int
	NewHighScore bool
}

// HUD composes the overlay on top of the playfield.
type HUD struct {
	TopBarHeight float64
}

func NewHUD() *HUD {
	return &HUD{TopBarHeight: 28}
}

// Draw appends the HUD in paint order: power-up timers, score bar and
// status, game-over panel, pause overlay, FPS counter.
func (h *HUD) Draw(dl *render.DrawList, v View) {
	dl.SetLayer(render.LayerHUD)
	h.drawPowerUps(dl, v)
	h.drawScoreBar(dl, v)

	dl.SetLayer(render.LayerOverlay)
	if v.Phase == core.PhaseGameOver {
		h.drawGameOver(dl, v)
	}
	if v.Phase == core.PhasePaused {
		h.drawPause(dl, v)
	}
	if v.ShowFPS {
		dl.Text(fmt.Sprintf("FPS: %d", v.FPS), v.Width-70, 20, 12, render.AlignLeft, hudWhite)
	}
}

// Seconds rounds a remaining duration up to whole seconds.
func Seconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

func (h *HUD) drawPowerUps(dl *render.DrawList, v View) {
	y := 20.0
	if v.ShieldLeft > 0 {
		dl.Text(fmt.Sprintf("Shield: %ds", Seconds(v.ShieldLeft)), 10, y, 14, render.AlignLeft, hudCyan)
		y += 20
	}
	if v.RapidLeft > 0 {
		dl.Text(fmt.Sprintf("Rapid Fire: %ds", Seconds(v.RapidLeft)), 10, y, 14, render.AlignLeft, hudMagenta)
	}
}

func (h *HUD) drawScoreBar(dl *render.DrawList, v View) {
	top := v.Height - h.TopBarHeight
	dl.FillRect(0, top, v.Width, h.TopBarHeight, hudBar)
	base := top + 19

	score := fmt.Sprintf("%s: %d   %s: %d   High: %d",
		core.TeamAlly, v.AllyScore, core.TeamEnemy, v.EnemyScore, v.HighScore)
	dl.Text(score, 10, base, 14, render.AlignLeft, hudWhite)

	if v.Phase != core.PhaseIdle {
		wave := fmt.Sprintf("Wave %d | Enemies: %d/%d", v.Wave, v.Defeated, v.Target)
		dl.Text(wave, v.Width-10, base, 14, render.AlignRight, hudWhite)
	}
	if v.Phase != core.PhaseGameOver && v.Status != "" {
		dl.Text(v.Status, v.Width/2, base, 14, render.AlignCenter, hudGold)
	}
}

// GameOverLines is the text of the game-over panel.
func GameOverLines(v View) []string {
	headline := "You were shot down!"
	if v.Reason == core.ReasonCollision {
		headline = "Collision!"
	}
	final := fmt.Sprintf("Final Score: %d", v.FinalScore)
	if v.NewHighScore {
		final += "  NEW HIGH SCORE!"
	}
	return []string{headline, final, "Press R to restart"}
}

func (h *HUD) drawGameOver(dl *render.DrawList, v View) {
	dl.FillRect(0, 0, v.Width, v.Height, hudShade)

	cx, cy := v.Width/2, v.Height/2
	pw, ph := 420.0, 170.0
	dl.FillRect(cx-pw/2, cy-ph/2, pw, ph, hudPanel)
	dl.StrokeRect(cx-pw/2, cy-ph/2, pw, ph, 2, hudWhite)

	lines := GameOverLines(v)
	y := cy - ph/2 + 45
	dl.Text(lines[0], cx, y, 32, render.AlignCenter, hudRed)
	dl.FillRect(cx-60, y+8, 120, 3, hudRed)

	scoreColour := hudWhite
	if v.NewHighScore {
		scoreColour = hudGold
	}
	dl.Text(lines[1], cx, y+45, 20, render.AlignCenter, scoreColour)
	dl.Text(lines[2], cx, y+80, 16, render.AlignCenter, hudWhite)
}

func (h *HUD) drawPause(dl *render.DrawList, v View) {
	dl.FillRect(0, 0, v.Width, v.Height, hudShade)
	dl.Text("PAUSED", v.Width/2, v.Height/2, 48, render.AlignCenter, hudWhite)
	dl.Text("Press P to resume", v.Width/2, v.Height/2+40, 24, render.AlignCenter, hudWhite)
}
