package pattern

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sparselife/pkg/life"
)

func asSet(cells []life.Cell) map[life.Cell]bool {
	m := map[life.Cell]bool{}
	for _, c := range cells {
		m[c] = true
	}
	return m
}

func TestDecodeGlider(t *testing.T) {
	cells, err := Decode(strings.NewReader(".O.\n..O\nOOO\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := asSet([]life.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}})
	got := asSet(cells)
	if len(got) != len(want) {
		t.Fatalf("decoded %d cells, want %d", len(got), len(want))
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("missing cell %v", c)
		}
	}
}

func TestDecodeCommentsDoNotConsumeRows(t *testing.T) {
	// A comment between data rows must not shift the rows below it.
	src := "! name\n# generator\nO\n! interleaved\nO\n"
	cells, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	got := asSet(cells)
	if len(got) != 2 || !got[life.Cell{X: 0, Y: 0}] || !got[life.Cell{X: 0, Y: 1}] {
		t.Fatalf("decoded cells %v, want (0,0) and (0,1)", cells)
	}
}

func TestDecodePermissiveCharacters(t *testing.T) {
	// Unknown bytes are dead cells, never errors; all live markers count.
	cells, err := Decode(strings.NewReader(".oX1 *?-\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	got := asSet(cells)
	want := asSet([]life.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	if len(got) != len(want) {
		t.Fatalf("decoded %d cells, want %d", len(got), len(want))
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("missing cell %v", c)
		}
	}
}

func TestDecodeEmptyLinesConsumeRows(t *testing.T) {
	cells, err := Decode(strings.NewReader("O\n\nO\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := asSet(cells)
	if len(got) != 2 || !got[life.Cell{X: 0, Y: 0}] || !got[life.Cell{X: 0, Y: 2}] {
		t.Fatalf("decoded cells %v, want (0,0) and (0,2)", cells)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cells, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.cells"))
	if err == nil {
		t.Fatal("LoadFile succeeded on a missing file")
	}
	if cells != nil {
		t.Fatalf("LoadFile returned %d cells alongside an error", len(cells))
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.cells")
	if err := os.WriteFile(path, []byte("! blinker\nOOO\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cells, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got := asSet(cells)
	want := asSet([]life.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	if len(got) != len(want) {
		t.Fatalf("loaded %d cells, want %d", len(got), len(want))
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("missing cell %v", c)
		}
	}
}

func TestLibraryGet(t *testing.T) {
	cells, ok := Get("glider")
	if !ok {
		t.Fatal("library is missing the glider")
	}
	if len(cells) != 5 {
		t.Fatalf("glider has %d cells, want 5", len(cells))
	}

	if _, ok := Get("no-such-pattern"); ok {
		t.Fatal("Get returned a pattern that was never registered")
	}
}

func TestLibraryNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("library is empty")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestSoupDeterministic(t *testing.T) {
	a := Soup(7, 40, 30, 0.3)
	b := Soup(7, 40, 30, 0.3)
	if len(a) == 0 {
		t.Fatal("soup at density 0.3 produced no cells")
	}
	if len(a) != len(b) {
		t.Fatalf("same seed produced %d then %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at cell %d: %v vs %v", i, a[i], b[i])
		}
	}

	for _, c := range a {
		if c.X < -20 || c.X >= 20 || c.Y < -15 || c.Y >= 15 {
			t.Fatalf("soup cell %v outside the centered 40x30 region", c)
		}
	}
}
