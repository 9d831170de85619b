package render

import (
	"image/color"

	"gol/internal/core"
)

// fillBoardRGBA writes one RGBA pixel per cell into buf in row-major order.
func fillBoardRGBA(buf []byte, b core.Board, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	n := b.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			base := (y*n + x) * 4
			if b.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// needsRedraw reports whether the painter must re-upload pixels for b.
// Boards that do not track changes are always redrawn.
func needsRedraw(b core.Board, first bool) bool {
	dt, ok := b.(core.DirtyTracker)
	if !ok {
		return true
	}
	dirty := dt.TakeDirty()
	return dirty || first
}
