package ui

// Status captures the values the overlay prints each frame.
type Status struct {
	Generation uint64
	Population int
	Scale      int
	CenterX    int
	CenterY    int
	Paused     bool
}
