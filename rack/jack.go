package rack

import (
	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/poly"
)

// Jack is an in-memory polyphonic port. It serves as Input and Output.
type Jack struct {
	connected bool
	channels  int
	written   int
	voltages  [poly.MaxChannels]float64
}

// NewJack returns a disconnected jack.
func NewJack() *Jack { return &Jack{} }

// Connect marks the jack as patched.
func (j *Jack) Connect() { j.connected = true }

// Disconnect unpatches the jack and drops its channels.
func (j *Jack) Disconnect() {
	j.connected = false
	j.SetChannels(0)
}

// IsConnected reports whether a cable is patched.
func (j *Jack) IsConnected() bool { return j.connected }

// Channels returns the declared channel count.
func (j *Jack) Channels() int { return j.channels }

// SetChannels declares n channels, clamped to [0, poly.MaxChannels].
// Channels exposed by the call read as 0 V.
func (j *Jack) SetChannels(n int) {
	n = poly.ClampChannels(n)
	for c := j.channels; c < n; c++ {
		j.voltages[c] = 0
	}
	j.channels = n
	j.written = n
}

// WriteVoltages stores up to poly.MaxChannels samples from src.
func (j *Jack) WriteVoltages(src []float64) {
	j.written = core.CopyInto(j.voltages[:], src)
}

// ReadVoltages copies the declared channels into dst.
func (j *Jack) ReadVoltages(dst []float64) int {
	return core.CopyInto(dst, j.voltages[:j.channels])
}

// SetVoltages patches the jack and feeds it one sample per channel.
func (j *Jack) SetVoltages(v ...float64) {
	j.connected = true
	j.SetChannels(len(v))
	j.WriteVoltages(v)
}

// Voltage returns channel c, or 0 outside the declared channels.
func (j *Jack) Voltage(c int) float64 {
	if c < 0 || c >= j.channels {
		return 0
	}
	return j.voltages[c]
}

// Voltages returns the declared channels. The slice aliases the jack.
func (j *Jack) Voltages() []float64 { return j.voltages[:j.channels] }

// Written returns everything stored by the last write, which can be longer
// than the declared channel count. The slice aliases the jack.
func (j *Jack) Written() []float64 { return j.voltages[:j.written] }

// Knob is host-side parameter storage clamped to its configured range.
type Knob struct {
	cfg   ParamConfig
	value float64
}

// NewKnob returns a knob at its default value.
func NewKnob(cfg ParamConfig) *Knob {
	k := &Knob{cfg: cfg}
	k.SetValue(cfg.Default)
	return k
}

// Value returns the current value.
func (k *Knob) Value() float64 { return k.value }

// SetValue stores v clamped to the configured range. Non-finite values are
// ignored.
func (k *Knob) SetValue(v float64) {
	if !core.IsFinite(v) {
		return
	}
	if k.cfg.Min != k.cfg.Max {
		v = core.Clamp(v, k.cfg.Min, k.cfg.Max)
	}
	k.value = v
}

// Config returns the knob's parameter configuration.
func (k *Knob) Config() ParamConfig { return k.cfg }

// Lamp stores a status brightness.
type Lamp struct {
	brightness float64
}

// SetBrightness stores b clamped to [0, 1].
func (l *Lamp) SetBrightness(b float64) { l.brightness = core.Clamp(b, 0, 1) }

// Brightness returns the stored brightness.
func (l *Lamp) Brightness() float64 { return l.brightness }
