package entity

import (
	"image/color"

	"github.com/1siamBot/dogfight/engine/render"
)

var (
	colBulletBody  = render.Hex(0xffa500)
	colBulletCore  = render.Hex(0xffff00)
	colShield      = render.WithAlpha(render.Hex(0x00ffff), 0.6)
	colDamageFlash = render.WithAlpha(render.Hex(0xff0000), 0.5)
	colBarBack     = render.Hex(0x333333)
	colBarBorder   = render.Hex(0xffffff)
	colHealthGood  = render.Hex(0x00ff00)
	colHealthWarn  = render.Hex(0xffa500)
	colHealthLow   = render.Hex(0xff0000)
	colCloud       = render.Hex(0xffffff)

	colPowerUp = [...]color.NRGBA{
		render.Hex(0x00ff00),
		render.Hex(0xff00ff),
		render.Hex(0x00ffff),
	}
	powerUpIcons = [...]string{"+", "R", "S"}
)
