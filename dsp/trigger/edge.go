package trigger

// High interprets a 0/1 trigger voltage or parameter value as a boolean.
// Only an exact 1 counts as pressed.
func High(v float64) bool {
	return v == 1
}

// Brightness maps a latch state to light brightness.
func Brightness(on bool) float64 {
	if on {
		return 1
	}
	return 0
}

// Edge detects false→true transitions between consecutive frames.
type Edge struct {
	last bool
}

// Rising records raw and reports whether it is a rising edge.
// Level-high and falling transitions report false.
func (e *Edge) Rising(raw bool) bool {
	rising := raw && !e.last
	e.last = raw
	return rising
}

// Reset forgets the previous raw state.
func (e *Edge) Reset() { e.last = false }
