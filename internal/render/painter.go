//go:build ebiten

package render

import (
	"image/color"

	"gol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an n×n image in sync with a board and draws it scaled.
type GridPainter struct {
	n     int
	img   *ebiten.Image
	buf   []byte
	drawn bool
}

// NewGridPainter allocates a painter for a board with n cells per side.
func NewGridPainter(n int) *GridPainter {
	return &GridPainter{n: n, img: ebiten.NewImage(n, n), buf: make([]byte, 4*n*n)}
}

// Draw refreshes the image when the board changed and draws it onto dst
// with every cell covering cellSize×cellSize pixels.
func (gp *GridPainter) Draw(dst *ebiten.Image, b core.Board, on, off color.Color, cellSize int) {
	if b.Size() != gp.n {
		return
	}
	if needsRedraw(b, !gp.drawn) {
		fillBoardRGBA(gp.buf, b, on, off)
		gp.img.WritePixels(gp.buf)
		gp.drawn = true
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
