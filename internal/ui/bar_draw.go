//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	barBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	buttonIdle    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonActive  = color.RGBA{R: 40, G: 110, B: 70, A: 255}
	buttonLabel   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

// Draw paints the strip; running selects the pressed look of toggle buttons.
func (b *Bar) Draw(screen *ebiten.Image, running bool) {
	if b.area.Empty() {
		return
	}
	fillRect(screen, b.area, barBackground)
	for i, btn := range b.buttons {
		active := btn.toggle && running
		bg := buttonIdle
		if active {
			bg = buttonActive
		}
		fillRect(screen, btn.rect, bg)
		drawCentered(screen, b.Label(i, active), btn.rect, buttonLabel)
	}
}

var pixel *ebiten.Image

// fillRect blends a solid rectangle onto dst.
func fillRect(dst *ebiten.Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}

func drawCentered(dst *ebiten.Image, label string, rect image.Rectangle, c color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, c)
}
