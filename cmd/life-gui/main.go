//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sparselife/internal/app"
	"sparselife/pkg/life"
	"sparselife/pkg/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cells, err := cfg.SeedCells()
	if err != nil {
		log.Fatalf("load pattern: %v", err)
	}
	if cells == nil {
		cells = pattern.Soup(cfg.Seed, cfg.Cols, cfg.Rows, cfg.Density)
	}

	engine := life.NewEngine()
	engine.Seed(cells)

	game := app.New(engine, cfg.Rows, cfg.Cols, cfg.Pixel)

	ebiten.SetWindowTitle("sparselife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Cols*cfg.Pixel, cfg.Rows*cfg.Pixel)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
