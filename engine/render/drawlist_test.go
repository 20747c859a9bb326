package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawList_LayersAndOrder(t *testing.T) {
	dl := NewDrawList()
	dl.Gradient(0, 0, 100, 70, Hex(0x87ceeb), Hex(0xe0f6ff))
	dl.SetLayer(LayerClouds)
	dl.Ellipse(10, 10, 40, 20, color.NRGBA{255, 255, 255, 128})
	dl.SetLayer(LayerHUD)
	dl.Text("FPS: 60", 90, 20, 12, AlignRight, Hex(0xffffff))

	cmds := dl.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, LayerBackground, cmds[0].Layer)
	assert.Equal(t, KindEllipse, cmds[1].Kind)
	assert.Equal(t, LayerHUD, cmds[2].Layer)
	assert.Equal(t, 1, dl.Count(LayerClouds, KindEllipse))

	dl.Reset()
	assert.Zero(t, dl.Len())
	dl.FillRect(0, 0, 1, 1, Hex(0))
	assert.Equal(t, LayerBackground, dl.Commands()[0].Layer)
}

func TestColourHelpers(t *testing.T) {
	assert.Equal(t, color.NRGBA{0xff, 0xa5, 0x00, 0xff}, Hex(0xffa500))
	assert.Equal(t, uint8(127), WithAlpha(Hex(0xffffff), 0.5).A)
	assert.Equal(t, uint8(0), WithAlpha(Hex(0xffffff), -1).A)
	mid := Lerp(color.NRGBA{0, 0, 0, 255}, color.NRGBA{200, 100, 50, 255}, 0.5)
	assert.Equal(t, color.NRGBA{100, 50, 25, 255}, mid)
}

func TestWithAlpha_ConvertsForStdlib(t *testing.T) {
	half := WithAlpha(Hex(0xff0000), 0.5)
	// a premultiplying consumer must see half-intensity red, not full red
	got := color.RGBAModel.Convert(half).(color.RGBA)
	assert.Equal(t, color.RGBA{127, 0, 0, 127}, got)

	dl := NewDrawList()
	dl.FillRect(0, 0, 1, 1, half)
	var stored color.Color = dl.Commands()[0].Color
	r, _, _, a := stored.RGBA()
	assert.Equal(t, a, r, "opaque-red hue at half alpha premultiplies to r == a")
}

func TestSpriteRef_Source(t *testing.T) {
	ref := SpriteRef{Col: 1, Row: 2, CellW: 384, CellH: 341, CropBottom: 80}
	sheet := image.Rect(0, 0, 384*4, 341*3)
	assert.Equal(t, image.Rect(384, 682, 768, 682+261), ref.Source(sheet))

	// undersized sheet clips, missing cells come back empty
	assert.Equal(t, image.Rect(384, 682, 500, 700), ref.Source(image.Rect(0, 0, 500, 700)))
	assert.True(t, ref.Source(image.Rect(0, 0, 300, 300)).Empty())

	ref.CropBottom = ref.CellH
	assert.True(t, ref.Source(sheet).Empty())
}
