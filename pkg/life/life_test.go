package life

import (
	"testing"

	"github.com/pkg/errors"
)

func newGrid(t *testing.T, n int) *Grid {
	t.Helper()
	g, err := New(n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return g
}

func aliveSet(g *Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.Alive(x, y) {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func expectAlive(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("generation %d: %d live cells, expected %d (%v)", g.Generation(), len(got), len(want), got)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("generation %d: cell (%d,%d) dead, expected alive", g.Generation(), c[0], c[1])
		}
	}
}

func TestNewRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		g, err := New(n)
		if g != nil || !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d) = %v, %v; expected ErrInvalidSize", n, g, err)
		}
	}
}

func TestNewIsAllDead(t *testing.T) {
	g := newGrid(t, 7)
	if g.Size() != 7 {
		t.Fatalf("Size() = %d", g.Size())
	}
	if g.Population() != 0 {
		t.Fatalf("fresh grid has %d live cells", g.Population())
	}
}

func TestSetAndAlive(t *testing.T) {
	g := newGrid(t, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, true)
			if !g.Alive(x, y) {
				t.Fatalf("cell (%d,%d) not alive after Set(true)", x, y)
			}
			if g.Population() != 1 {
				t.Fatalf("Set(%d,%d) touched other cells: population %d", x, y, g.Population())
			}
			g.Set(x, y, false)
			if g.Alive(x, y) {
				t.Fatalf("cell (%d,%d) alive after Set(false)", x, y)
			}
		}
	}
}

func TestSetOutOfRangeIsNoop(t *testing.T) {
	g := newGrid(t, 5)
	g.Set(2, 2, true)
	before := aliveSet(g)
	g.TakeDirty()

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {5, 5}, {-1, -1}, {100, 2}} {
		g.Set(c[0], c[1], true)
	}
	if got := aliveSet(g); len(got) != len(before) || !got[[2]int{2, 2}] {
		t.Fatalf("out-of-range Set changed the grid: %v", got)
	}
	if g.TakeDirty() {
		t.Fatal("out-of-range Set marked the grid dirty")
	}
	if g.Alive(-1, 0) || g.Alive(0, 5) {
		t.Fatal("out-of-range Alive reported true")
	}
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	g := newGrid(t, 6)
	g.Step()
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("empty grid grew %d cells", g.Population())
	}
	if g.Generation() != 2 {
		t.Fatalf("Generation() = %d, expected 2", g.Generation())
	}
}

func TestBlockIsStable(t *testing.T) {
	g := newGrid(t, 8)
	block := [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}}
	for _, c := range block {
		g.Set(c[0], c[1], true)
	}
	for _, c := range block {
		if n := g.liveNeighbors(c[0], c[1]); n != 3 {
			t.Fatalf("block cell (%d,%d) has %d neighbours, expected 3", c[0], c[1], n)
		}
	}
	for i := 0; i < 3; i++ {
		g.Step()
		expectAlive(t, g, block...)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGrid(t, 5)
	g.Set(2, 2, true)
	g.Set(1, 2, true)
	g.Set(3, 2, true)

	g.Step()
	expectAlive(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g.Step()
	expectAlive(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
}

func TestBlinkerAwayFromEdges(t *testing.T) {
	g := newGrid(t, 20)
	x, y := 11, 6
	g.Set(x-1, y, true)
	g.Set(x, y, true)
	g.Set(x+1, y, true)

	g.Step()
	expectAlive(t, g, [2]int{x, y - 1}, [2]int{x, y}, [2]int{x, y + 1})
	g.Step()
	expectAlive(t, g, [2]int{x - 1, y}, [2]int{x, y}, [2]int{x + 1, y})
}

func TestCornerNeighbors(t *testing.T) {
	g := newGrid(t, 4)
	g.Set(1, 0, true)
	g.Set(0, 1, true)
	g.Set(1, 1, true)
	if n := g.liveNeighbors(0, 0); n != 3 {
		t.Fatalf("liveNeighbors(0,0) = %d, expected 3", n)
	}

	// No wraparound: the opposite corner sees nothing from (0,0)'s corner.
	g.Set(0, 0, true)
	if n := g.liveNeighbors(3, 3); n != 0 {
		t.Fatalf("liveNeighbors(3,3) = %d, expected 0", n)
	}
}

func TestNeighborsEdges(t *testing.T) {
	g := newGrid(t, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, true)
		}
	}
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3}, {2, 0, 3}, {0, 2, 3}, {2, 2, 3},
		{1, 0, 5}, {0, 1, 5}, {2, 1, 5}, {1, 2, 5},
		{1, 1, 8},
	}
	for _, tt := range tests {
		if n := g.liveNeighbors(tt.x, tt.y); n != tt.want {
			t.Fatalf("liveNeighbors(%d,%d) = %d, expected %d", tt.x, tt.y, n, tt.want)
		}
	}
}

func TestSingleCellGrid(t *testing.T) {
	g := newGrid(t, 1)
	g.Set(0, 0, true)
	if n := g.liveNeighbors(0, 0); n != 0 {
		t.Fatalf("liveNeighbors on 1x1 = %d", n)
	}
	g.Step()
	if g.Alive(0, 0) {
		t.Fatal("lonely cell survived")
	}
}

func TestStepUsesSnapshot(t *testing.T) {
	// An in-place update reads half-updated neighbours and breaks the
	// glider's known phases.
	g := newGrid(t, 8)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range glider {
		g.Set(c[0], c[1], true)
	}
	g.Step()
	expectAlive(t, g, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2}, [2]int{1, 3})

	for i := 0; i < 3; i++ {
		g.Step()
	}
	// After four generations the glider is the same shape shifted by (1,1).
	shifted := make([][2]int, len(glider))
	for i, c := range glider {
		shifted[i] = [2]int{c[0] + 1, c[1] + 1}
	}
	expectAlive(t, g, shifted...)
}

func TestDirtyTracking(t *testing.T) {
	g := newGrid(t, 3)
	if !g.TakeDirty() {
		t.Fatal("fresh grid should need an initial draw")
	}
	if g.TakeDirty() {
		t.Fatal("TakeDirty did not reset the flag")
	}
	g.Set(1, 1, true)
	if !g.TakeDirty() {
		t.Fatal("Set did not mark dirty")
	}
	g.Step()
	if !g.TakeDirty() {
		t.Fatal("Step did not mark dirty")
	}
	g.Clear()
	if !g.TakeDirty() {
		t.Fatal("Clear did not mark dirty")
	}
}

func TestClearAndRandomize(t *testing.T) {
	g := newGrid(t, 16)
	g.Randomize(42)
	first := aliveSet(g)
	if len(first) == 0 {
		t.Fatal("Randomize produced an empty grid")
	}
	g.Step()

	g.Randomize(42)
	if g.Generation() != 0 {
		t.Fatalf("Randomize kept generation %d", g.Generation())
	}
	again := aliveSet(g)
	if len(again) != len(first) {
		t.Fatalf("Randomize(42) not deterministic: %d vs %d cells", len(again), len(first))
	}
	for c := range first {
		if !again[c] {
			t.Fatalf("Randomize(42) not deterministic at (%d,%d)", c[0], c[1])
		}
	}

	g.Step()
	g.Clear()
	if g.Population() != 0 || g.Generation() != 0 {
		t.Fatalf("Clear left population %d generation %d", g.Population(), g.Generation())
	}
}
