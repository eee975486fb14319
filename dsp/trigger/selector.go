package trigger

// None is the Selector index reported when no mode is active.
const None = -1

// Selector is a set of mutually exclusive, edge-triggered modes. A rising
// edge on mode i activates it and deactivates every other mode. Raw states
// are evaluated in index order, so when two modes rise in the same frame the
// higher index wins.
type Selector struct {
	edges  []Edge
	active int
}

// NewSelector returns a Selector over n modes with none active.
func NewSelector(n int) *Selector {
	if n < 0 {
		n = 0
	}
	return &Selector{edges: make([]Edge, n), active: None}
}

// Len returns the number of modes.
func (s *Selector) Len() int { return len(s.edges) }

// Update feeds one frame of raw states, one per mode. Missing trailing
// states count as released; extra states are ignored.
func (s *Selector) Update(raw ...bool) int {
	for i := range s.edges {
		pressed := i < len(raw) && raw[i]
		if s.edges[i].Rising(pressed) {
			s.active = i
		}
	}
	return s.active
}

// Active returns the active mode index, or None.
func (s *Selector) Active() int { return s.active }

// IsActive reports whether mode i is active.
func (s *Selector) IsActive(i int) bool { return s.active != None && s.active == i }

// Clear deactivates all modes. Edge history is kept, so a button held
// through Clear does not re-trigger.
func (s *Selector) Clear() { s.active = None }

// Reset deactivates all modes and forgets edge history.
func (s *Selector) Reset() {
	s.active = None
	for i := range s.edges {
		s.edges[i].Reset()
	}
}
