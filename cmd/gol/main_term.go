//go:build !ebiten

package main

import (
	"log"
	"os"

	"gol/internal/app"
	"gol/internal/core"
	"gol/internal/tui"
	"gol/pkg/life"
)

// Without the ebiten tag the same board runs in the terminal. Build with
// `-tags ebiten` for the desktop window.
func main() {
	log.SetFlags(0)
	log.SetPrefix("gol: ")

	cfg := app.NewConfig()
	app.LogWarnings(cfg.Parse(os.Args[1:]))

	grid, err := life.New(cfg.CellsPerRow)
	if err != nil {
		log.Fatal(err)
	}

	if err := tui.Run(core.NewController(grid, cfg.Rate)); err != nil {
		log.Fatal(err)
	}
}
