package main

import (
	"flag"
	"log"
	"time"

	"sparselife/internal/app"
	"sparselife/internal/term"
	"sparselife/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cells, err := cfg.SeedCells()
	if err != nil {
		log.Fatalf("load pattern: %v", err)
	}

	engine := life.NewEngine()
	engine.Seed(cells)

	loop := term.NewLoop(engine, time.Duration(cfg.DelayMS)*time.Millisecond)
	if err := loop.Run(); err != nil {
		log.Fatal(err)
	}
}
