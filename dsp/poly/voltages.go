package poly

// MaxChannels is the polyphony limit of a single cable.
const MaxChannels = 16

// Voltages wraps a float64 slice of per-channel samples with reuse-friendly
// semantics. Modules accept raw []float64; use Samples() to bridge.
type Voltages struct {
	samples []float64
}

// New returns an empty Voltages with capacity for full polyphony.
func New() *Voltages {
	return &Voltages{samples: make([]float64, 0, MaxChannels)}
}

// ClampChannels limits n to [0, MaxChannels].
func ClampChannels(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxChannels {
		return MaxChannels
	}
	return n
}

// Samples returns the underlying slice.
func (v *Voltages) Samples() []float64 {
	return v.samples
}

// Channels returns the current channel count.
func (v *Voltages) Channels() int {
	return len(v.samples)
}

// Clear drops all channels while keeping the backing array.
func (v *Voltages) Clear() {
	v.samples = v.samples[:0]
}

// Resize sets the channel count to n, clamped to [0, MaxChannels], reusing
// capacity when possible. Channels beyond the previous count are zeroed.
func (v *Voltages) Resize(n int) {
	n = ClampChannels(n)

	oldLen := len(v.samples)
	if n <= cap(v.samples) {
		v.samples = v.samples[:n]
	} else {
		s := make([]float64, n, MaxChannels)
		copy(s, v.samples)
		v.samples = s
	}

	// The backing array may still hold values from an earlier frame.
	for i := oldLen; i < n; i++ {
		v.samples[i] = 0
	}
}

// GrowTo extends the channel count to at least n, zero-padding new channels.
// It never shrinks.
func (v *Voltages) GrowTo(n int) {
	if n > len(v.samples) {
		v.Resize(n)
	}
}
