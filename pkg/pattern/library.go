package pattern

import (
	"math/rand/v2"
	"sort"
	"strings"

	"sparselife/pkg/life"
)

var library = map[string]string{}

// Register adds a plaintext pattern to the library under the provided name.
func Register(name, art string) {
	if name == "" || art == "" {
		return
	}
	library[name] = art
}

// Get decodes the named library pattern.
func Get(name string) ([]life.Cell, bool) {
	art, ok := library[name]
	if !ok {
		return nil, false
	}
	cells, err := Decode(strings.NewReader(art))
	if err != nil {
		return nil, false
	}
	return cells, true
}

// Names lists the library patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Soup scatters a random population over a w-by-h region centered on the
// origin. Density is the probability a cell starts live; the same seed always
// produces the same soup.
func Soup(seed int64, w, h int, density float64) []life.Cell {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	var cells []life.Cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				cells = append(cells, life.Cell{X: x - w/2, Y: y - h/2})
			}
		}
	}
	return cells
}

func init() {
	Register("glider", `
.O.
..O
OOO
`[1:])
	Register("blinker", "OOO\n")
	Register("block", "OO\nOO\n")
	Register("toad", `
.OOO
OOO.
`[1:])
	Register("beacon", `
OO..
OO..
..OO
..OO
`[1:])
	Register("r-pentomino", `
.OO
OO.
.O.
`[1:])
	Register("acorn", `
.O.....
...O...
OO..OOO
`[1:])
	Register("gosper-gun", `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................
`[1:])
}
