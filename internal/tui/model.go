package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gol/internal/core"
)

const (
	// fieldTop is the screen row of the first board row; the header sits above it.
	fieldTop = 1
	// cellWidth is the number of terminal columns per cell.
	cellWidth = 2
)

const helpText = "space run/stop · n next · c clear · s random · left draw · right erase · q quit"

// tickMsg drives the controller between input events.
type tickMsg time.Time

func doTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model of the terminal frontend.
type Model struct {
	ctrl   *core.Controller
	pen    *core.Pen
	styles Styles
	seed   func() int64

	width  int
	height int
}

// NewModel builds a model around ctrl. Every cell is two columns wide so
// the board keeps a square aspect on common terminal fonts.
func NewModel(ctrl *core.Controller) Model {
	return Model{
		ctrl:   ctrl,
		pen:    core.NewPen(ctrl.Board(), cellWidth, 1),
		styles: DefaultStyles(),
		seed:   func() int64 { return time.Now().UnixNano() },
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return doTick() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ctrl.Tick()
		return m, doTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.ctrl.Toggle()
	case "n":
		m.ctrl.Next()
	case "c":
		m.ctrl.Clear()
	case "s":
		m.ctrl.Randomize(m.seed())
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	px, py := msg.X, msg.Y-fieldTop
	switch msg.Action {
	case tea.MouseActionPress:
		if !m.inField(px, py) {
			return
		}
		m.pen.Press(penButton(msg.Button), px, py)
	case tea.MouseActionMotion:
		if m.inField(px, py) {
			m.pen.Move(px, py)
		}
	case tea.MouseActionRelease:
		b := penButton(msg.Button)
		if b == core.ButtonNone {
			// Some terminals do not report which button went up.
			b = m.pen.Held()
		}
		m.pen.Release(b)
	}
}

func penButton(b tea.MouseButton) core.Button {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonDraw
	case tea.MouseButtonRight:
		return core.ButtonErase
	}
	return core.ButtonNone
}

// visible returns how many board columns and rows fit on screen.
func (m Model) visible() (cols, rows int) {
	n := m.ctrl.Board().Size()
	cols = min(n, m.width/cellWidth)
	rows = min(n, m.height-fieldTop-1)
	return max(cols, 0), max(rows, 0)
}

func (m Model) inField(px, py int) bool {
	cols, rows := m.visible()
	x, y := m.pen.CellAt(px, py)
	if m.cropped() {
		rows-- // last row carries the warning
	}
	return x >= 0 && x < cols && y >= 0 && y < rows
}

func (m Model) cropped() bool {
	n := m.ctrl.Board().Size()
	cols, rows := m.visible()
	return cols < n || rows < n
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteByte('\n')

	board := m.ctrl.Board()
	cols, rows := m.visible()
	crop := m.cropped()
	live := m.styles.Live.Render(liveCell)
	dead := m.styles.Dead.Render(deadCell)
	for y := 0; y < rows; y++ {
		if crop && y == rows-1 {
			b.WriteString(m.styles.Warning.Render("The field size is larger than the viewing area"))
			b.WriteByte('\n')
			break
		}
		for x := 0; x < cols; x++ {
			if board.Alive(x, y) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Help.Render(helpText))
	return b.String()
}

func (m Model) header() string {
	board := m.ctrl.Board()
	mode := m.styles.Paused.Render("paused")
	if m.ctrl.Running() {
		mode = m.styles.Running.Render("running")
	}
	title := m.styles.Header.Render("Game of Life")
	return fmt.Sprintf("%s  %d×%d  gen %d  pop %d  %s",
		title, board.Size(), board.Size(), board.Generation(), board.Population(), mode)
}
