// Package pattern reads plaintext cell patterns and carries a small library
// of well-known ones.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"sparselife/pkg/life"
)

// Decode reads a line-oriented plaintext pattern. Lines starting with '!' or
// '#' are comments; they are skipped and do not consume a row index. Within a
// data row, the bytes 'O', 'o', 'X' and '1' mark live cells at (column, row);
// every other byte, '.' and space included, is dead.
func Decode(r io.Reader) ([]life.Cell, error) {
	var cells []life.Cell
	scanner := bufio.NewScanner(r)
	y := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) > 0 && (line[0] == '!' || line[0] == '#') {
			continue
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case 'O', 'o', 'X', '1':
				cells = append(cells, life.Cell{X: x, Y: y})
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}

// LoadFile decodes the pattern stored at path. On failure no cells are
// returned, so callers can leave their engine untouched.
func LoadFile(path string) ([]life.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cells, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cells, nil
}
