package level

import "github.com/gopxl/beep"

// Meter passes a stream through unchanged while measuring it.
type Meter struct {
	s           beep.Streamer
	left, right Accumulator
}

var _ beep.Streamer = (*Meter)(nil)

// NewMeter wraps s.
func NewMeter(s beep.Streamer) *Meter { return &Meter{s: s} }

func (m *Meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.s.Stream(samples)
	for _, f := range samples[:n] {
		m.left.Add(f[0])
		m.right.Add(f[1])
	}
	return n, ok
}

func (m *Meter) Err() error { return m.s.Err() }

// Left returns the statistics of the left side so far.
func (m *Meter) Left() Stats { return m.left.Result() }

// Right returns the statistics of the right side so far.
func (m *Meter) Right() Stats { return m.right.Result() }
