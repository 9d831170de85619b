//go:build ebiten

package main

import (
	"log"
	"os"

	"gol/internal/app"
	"gol/internal/core"
	"gol/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gol: ")

	cfg := app.NewConfig()
	app.LogWarnings(cfg.Parse(os.Args[1:]))

	grid, err := life.New(cfg.CellsPerRow)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(core.NewController(grid, cfg.Rate), cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
