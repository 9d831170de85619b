//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws editing aids on top of the field: the cell under the
// cursor and, when toggled with G, the grid lines.
type Overlay struct {
	n         int
	cellSize  int
	showGrid  bool
	hoverX    int
	hoverY    int
	hasHover  bool
	hoverTint color.Color
	lineTint  color.Color
}

// NewOverlay constructs an overlay for an n×n field of cellSize pixel cells.
func NewOverlay(n, cellSize int) *Overlay {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Overlay{
		n:         n,
		cellSize:  cellSize,
		hoverTint: color.RGBA{R: 90, G: 130, B: 170, A: 140},
		lineTint:  color.RGBA{R: 40, G: 40, B: 48, A: 255},
	}
}

// Update toggles grid lines and tracks the hovered cell.
func (o *Overlay) Update(cellX, cellY int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	o.hoverX, o.hoverY = cellX, cellY
	o.hasHover = cellX >= 0 && cellX < o.n && cellY >= 0 && cellY < o.n
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	field := o.n * o.cellSize
	// Lines would cover the cells entirely below a few pixels per cell.
	if o.showGrid && o.cellSize >= 4 {
		for i := 1; i < o.n; i++ {
			p := i * o.cellSize
			fillRect(screen, image.Rect(p, 0, p+1, field), o.lineTint)
			fillRect(screen, image.Rect(0, p, field, p+1), o.lineTint)
		}
	}
	if o.hasHover {
		x0, y0 := o.hoverX*o.cellSize, o.hoverY*o.cellSize
		fillRect(screen, image.Rect(x0, y0, x0+o.cellSize, y0+o.cellSize), o.hoverTint)
	}
}
