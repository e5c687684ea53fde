// life-census runs a pattern headless and prints how its population evolves.
package main

import (
	"flag"
	"fmt"
	"log"

	"sparselife/internal/app"
	"sparselife/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate")
	every := flag.Int("every", 10, "print a census line every N generations")
	flag.Parse()

	cells, err := cfg.SeedCells()
	if err != nil {
		log.Fatalf("load pattern: %v", err)
	}
	if len(cells) == 0 {
		log.Fatal("life-census needs a -file or -pattern seed")
	}

	engine := life.NewEngine()
	engine.Seed(cells)

	fmt.Printf("generation %d: %d live\n", engine.Generation(), engine.Population())
	for i := 0; i < *steps; i++ {
		engine.Step()
		if *every > 0 && (i+1)%*every == 0 {
			fmt.Printf("generation %d: %d live\n", engine.Generation(), engine.Population())
		}
	}

	if minX, minY, maxX, maxY, ok := bounds(engine.Live()); ok {
		fmt.Printf("final bounding box: (%d,%d)..(%d,%d)\n", minX, minY, maxX, maxY)
	} else {
		fmt.Println("population died out")
	}
}

func bounds(set *life.CellSet) (minX, minY, maxX, maxY int, ok bool) {
	it := set.Iter()
	for c, more := it.Next(); more; c, more = it.Next() {
		if !ok {
			minX, maxX, minY, maxY, ok = c.X, c.X, c.Y, c.Y, true
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return minX, minY, maxX, maxY, ok
}
