// Package life implements Conway's Game of Life on a bounded square grid.
//
// Cells outside the grid are treated as permanently dead: edge and corner
// cells simply have fewer candidate neighbours.
package life

import (
	"github.com/pkg/errors"

	"gol/pkg/core"
)

// ErrInvalidSize is returned by New for a non-positive side length.
var ErrInvalidSize = errors.New("life: grid size must be positive")

// Grid is an n×n Game of Life board.
type Grid struct {
	n   int
	cur []bool
	nxt []bool

	generation int
	dirty      bool
}

// New returns an all-dead grid with n cells per side.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %d", n)
	}
	return &Grid{
		n:     n,
		cur:   make([]bool, n*n),
		nxt:   make([]bool, n*n),
		dirty: true,
	}, nil
}

// Size returns the number of cells per side.
func (g *Grid) Size() int { return g.n }

// Generation returns the number of steps taken since construction or the
// last Clear/Randomize.
func (g *Grid) Generation() int { return g.generation }

// Population counts the live cells.
func (g *Grid) Population() int {
	alive := 0
	for _, c := range g.cur {
		if c {
			alive++
		}
	}
	return alive
}

func (g *Grid) index(x, y int) int { return x + y*g.n }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

// Alive reports whether the cell at (x, y) is alive. Coordinates outside
// the grid report dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cur[g.index(x, y)]
}

// Set changes the state of a single cell. Coordinates outside the grid are
// ignored, so pointer math that lands one past the edge is harmless.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inBounds(x, y) {
		return
	}
	g.cur[g.index(x, y)] = alive
	g.dirty = true
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	clear(g.cur)
	g.generation = 0
	g.dirty = true
}

// Randomize replaces the board with a seeded random soup.
func (g *Grid) Randomize(seed int64) {
	core.NewRNG(seed).FillBool(g.cur)
	g.generation = 0
	g.dirty = true
}

// TakeDirty reports whether the board changed since the previous call and
// resets the flag.
func (g *Grid) TakeDirty() bool {
	d := g.dirty
	g.dirty = false
	return d
}

// liveNeighbors counts live cells in the Moore neighbourhood of (x, y).
func (g *Grid) liveNeighbors(x, y int) int {
	n := g.n
	left := x-1 >= 0
	right := x+1 < n
	count := b2i(left && g.cur[x-1+y*n])
	count += b2i(right && g.cur[x+1+y*n])
	if y > 0 {
		row := (y - 1) * n
		count += b2i(left && g.cur[x-1+row])
		count += b2i(g.cur[x+row])
		count += b2i(right && g.cur[x+1+row])
	}
	if y+1 < n {
		row := (y + 1) * n
		count += b2i(left && g.cur[x-1+row])
		count += b2i(g.cur[x+row])
		count += b2i(right && g.cur[x+1+row])
	}
	return count
}

// Step advances the board by one generation. Every next state is computed
// from the current buffer before the buffers are swapped.
func (g *Grid) Step() {
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			idx := g.index(x, y)
			neighbors := g.liveNeighbors(x, y)
			alive := g.cur[idx]
			switch {
			case alive && neighbors != 2 && neighbors != 3:
				g.nxt[idx] = false
			case !alive && neighbors == 3:
				g.nxt[idx] = true
			default:
				g.nxt[idx] = alive
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
	g.dirty = true
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
