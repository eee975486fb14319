package trigger

// Latch toggles on every rising edge of its trigger. It starts off.
type Latch struct {
	edge Edge
	on   bool
}

// Update feeds one frame's raw trigger state and returns the latch state.
func (l *Latch) Update(raw bool) bool {
	if l.edge.Rising(raw) {
		l.on = !l.on
	}
	return l.on
}

// On reports the current latch state.
func (l *Latch) On() bool { return l.on }

// Brightness returns 1 when on, 0 when off.
func (l *Latch) Brightness() float64 { return Brightness(l.on) }

// Reset returns the latch to its construction state.
func (l *Latch) Reset() {
	l.edge.Reset()
	l.on = false
}
