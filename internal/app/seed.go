package app

import (
	"fmt"
	"strings"

	"sparselife/pkg/life"
	"sparselife/pkg/pattern"
)

// SeedCells resolves the configured pattern source. An explicit file wins
// over a library pattern name; with neither set it returns nil cells, which
// seeds an empty world.
func (c *Config) SeedCells() ([]life.Cell, error) {
	if c.File != "" {
		return pattern.LoadFile(c.File)
	}
	if c.Pattern != "" {
		cells, ok := pattern.Get(c.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (available: %s)",
				c.Pattern, strings.Join(pattern.Names(), ", "))
		}
		return cells, nil
	}
	return nil, nil
}
