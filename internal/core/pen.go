package core

// Button identifies a pointer button as far as editing is concerned.
type Button int

const (
	// ButtonNone is any button that does not edit cells.
	ButtonNone Button = iota
	// ButtonDraw brings cells to life (left mouse button).
	ButtonDraw
	// ButtonErase kills cells (right mouse button).
	ButtonErase
)

// Pen turns pointer events into cell edits. While a button is held every
// cell the pointer crosses is drawn or erased; a second button pressed in
// the meantime is ignored.
type Pen struct {
	board Board
	cellW int
	cellH int
	held  Button
}

// NewPen creates a pen over board where each cell covers cellW×cellH units
// of pointer space.
func NewPen(board Board, cellW, cellH int) *Pen {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Pen{board: board, cellW: cellW, cellH: cellH}
}

// Held returns the latched button, or ButtonNone when idle.
func (p *Pen) Held() Button { return p.held }

// CellAt maps pointer coordinates to cell coordinates. Negative pointer
// positions map to negative cells.
func (p *Pen) CellAt(px, py int) (int, int) {
	return floorDiv(px, p.cellW), floorDiv(py, p.cellH)
}

// Press latches b and edits the cell under the pointer.
func (p *Pen) Press(b Button, px, py int) {
	if p.held != ButtonNone {
		return
	}
	if b == ButtonDraw || b == ButtonErase {
		p.held = b
	}
	p.apply(px, py)
}

// Move edits the cell under the pointer while a button is latched.
func (p *Pen) Move(px, py int) {
	if p.held == ButtonNone {
		return
	}
	p.apply(px, py)
}

// Release unlatches b if it is the button currently held.
func (p *Pen) Release(b Button) {
	if b != ButtonNone && b == p.held {
		p.held = ButtonNone
	}
}

func (p *Pen) apply(px, py int) {
	if p.held == ButtonNone {
		return
	}
	x, y := p.CellAt(px, py)
	p.board.Set(x, y, p.held == ButtonDraw)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
