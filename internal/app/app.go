//go:build ebiten

package app

import (
	"image/color"
	"time"

	"gol/internal/core"
	"gol/internal/render"
	"gol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *core.Controller
	pen     *core.Pen
	painter *render.GridPainter
	bar     *ui.Bar
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	cellSize  int
	field     int
	barHeight int
}

var penButtons = []struct {
	mouse ebiten.MouseButton
	pen   core.Button
}{
	{ebiten.MouseButtonLeft, core.ButtonDraw},
	{ebiten.MouseButtonRight, core.ButtonErase},
}

// New constructs a Game for the provided controller and configuration.
func New(ctrl *core.Controller, cfg *Config) *Game {
	n := ctrl.Board().Size()
	cell := cfg.CellSize()
	g := &Game{
		ctrl:      ctrl,
		pen:       core.NewPen(ctrl.Board(), cell, cell),
		painter:   render.NewGridPainter(n),
		bar:       ui.NewBar(),
		overlay:   ui.NewOverlay(n, cell),
		onColor:   color.White,
		offColor:  color.Black,
		cellSize:  cell,
		field:     cell * n,
		barHeight: cfg.BarHeight,
	}
	g.bar.Layout(g.field, g.field, g.barHeight)
	return g
}

// WindowSize returns the outer window size in pixels.
func (g *Game) WindowSize() (int, int) { return g.field, g.field + g.barHeight }

// Update handles input and advances the simulation when the timer fires.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Randomize(time.Now().UnixNano())
	}

	mx, my := ebiten.CursorPosition()
	g.handleMouse(mx, my)
	g.overlay.Update(g.pen.CellAt(mx, my))

	g.ctrl.Tick()
	return nil
}

func (g *Game) handleMouse(mx, my int) {
	if g.pen.Held() == core.ButtonNone && g.bar.Contains(mx, my) {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			switch g.bar.Hit(mx, my) {
			case ui.ButtonNext:
				g.ctrl.Next()
			case ui.ButtonRun:
				g.ctrl.Toggle()
			}
		}
		return
	}
	for _, b := range penButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			g.pen.Press(b.pen, mx, my)
		}
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			g.pen.Release(b.pen)
		}
	}
	g.pen.Move(mx, my)
}

// Draw renders the field, the editing overlay and the button strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.ctrl.Board(), g.onColor, g.offColor, g.cellSize)
	g.overlay.Draw(screen)
	g.bar.Draw(screen, g.ctrl.Running())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
