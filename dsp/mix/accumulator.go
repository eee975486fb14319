package mix

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-modular/dsp/poly"
)

// Mode selects how buses are combined.
type Mode int

const (
	// ModeOff disables accumulation.
	ModeOff Mode = iota
	// ModeSum adds buses channel-wise.
	ModeSum
	// ModeAverage adds buses channel-wise and divides by the channel total.
	ModeAverage
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeSum:
		return "sum"
	case ModeAverage:
		return "avg"
	default:
		return "unknown"
	}
}

// Accumulator sums polyphonic buses into a buffer it owns and reuses.
type Accumulator struct {
	sum      *poly.Voltages
	channels int
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{sum: poly.New()}
}

// Reset clears the buffer and the channel total.
func (a *Accumulator) Reset() {
	a.sum.Clear()
	a.channels = 0
}

// Add grows the buffer to at least len(bus) slots and adds bus into it.
// Buses longer than poly.MaxChannels are truncated.
func (a *Accumulator) Add(bus []float64) {
	n := poly.ClampChannels(len(bus))
	a.sum.GrowTo(n)
	vecmath.AddBlockInPlace(a.sum.Samples()[:n], bus[:n])
	a.channels += n
}

// Average divides every slot by the channel total. It is a no-op while the
// total is zero.
func (a *Accumulator) Average() {
	if a.channels == 0 {
		return
	}
	n := float64(a.channels)
	samples := a.sum.Samples()
	for i := range samples {
		samples[i] /= n
	}
}

// Samples returns the accumulated slots. The slice is reused by later calls.
func (a *Accumulator) Samples() []float64 { return a.sum.Samples() }

// Len returns the number of accumulated slots.
func (a *Accumulator) Len() int { return a.sum.Channels() }

// Channels returns the running channel total.
func (a *Accumulator) Channels() int { return a.channels }

// Combine resets a, adds every bus and applies mode. It reports whether any
// channel was accumulated. ModeOff leaves a untouched and returns false.
func (a *Accumulator) Combine(mode Mode, buses ...[]float64) bool {
	if mode != ModeSum && mode != ModeAverage {
		return false
	}

	a.Reset()
	for _, bus := range buses {
		if bus != nil {
			a.Add(bus)
		}
	}

	if mode == ModeAverage {
		a.Average()
	}

	return a.channels > 0
}
