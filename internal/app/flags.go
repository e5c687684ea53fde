package app

import "flag"

// Config represents the command-line parameters shared by the front ends.
// Each cmd binds it to its own FlagSet; flags a front end has no use for are
// simply ignored there.
type Config struct {
	File    string
	Pattern string
	DelayMS int
	TPS     int
	Rows    int
	Cols    int
	Pixel   int
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		DelayMS: 200,
		TPS:     15,
		Rows:    96,
		Cols:    128,
		Pixel:   6,
		Seed:    42,
		Density: 0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "file", c.File, "load the initial pattern from a plaintext file")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed from a built-in pattern by name")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "delay between generations in milliseconds (terminal)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (gui)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "viewport height in cells (gui)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "viewport width in cells (gui)")
	fs.IntVar(&c.Pixel, "pixel", c.Pixel, "pixels per screen cell (gui)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability for the random soup")
}
