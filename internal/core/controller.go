package core

// Controller drives a Board from a frame loop: it owns the Run toggle and
// the timer that paces automatic generations.
type Controller struct {
	board   Board
	clock   *FixedStep
	running bool
}

// NewController wraps board, advancing it rate times per second while running.
func NewController(board Board, rate int) *Controller {
	return &Controller{board: board, clock: NewFixedStep(rate)}
}

// Board returns the controlled board.
func (c *Controller) Board() Board { return c.board }

// Running reports whether automatic stepping is enabled.
func (c *Controller) Running() bool { return c.running }

// SetRunning enables or disables automatic stepping. Starting restarts the
// timer so the first generation lands one interval later.
func (c *Controller) SetRunning(on bool) {
	if on && !c.running {
		c.clock.Reset()
	}
	c.running = on
}

// Toggle flips the Run state.
func (c *Controller) Toggle() { c.SetRunning(!c.running) }

// Next advances exactly one generation regardless of the Run state.
func (c *Controller) Next() { c.board.Step() }

// Tick is called once per frame and reports whether a generation was taken.
func (c *Controller) Tick() bool {
	if !c.running || !c.clock.ShouldStep() {
		return false
	}
	c.board.Step()
	return true
}

// Clear kills every cell.
func (c *Controller) Clear() { c.board.Clear() }

// Randomize seeds the board with a random soup when the board supports it.
func (c *Controller) Randomize(seed int64) bool {
	s, ok := c.board.(Seeder)
	if !ok {
		return false
	}
	s.Randomize(seed)
	return true
}
