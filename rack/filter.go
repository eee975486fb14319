package rack

import (
	"fmt"

	"github.com/cwbudde/algo-modular/dsp/filter/onepole"
	"github.com/cwbudde/algo-modular/dsp/poly"
	"github.com/cwbudde/algo-modular/dsp/trigger"
)

// Filter port ids.
const (
	FilterPowerParam = iota
	FilterCutoffParam
)

const (
	FilterSignalInput = iota
)

const (
	FilterLowPassOutput = iota
	FilterBandPassOutput
	FilterHighPassOutput
)

const (
	FilterPowerLight = iota
)

// FilterConfig describes the Filter module.
func FilterConfig() Config {
	return Config{
		Slug: "Filter",
		Params: []ParamConfig{
			button("power", "Power Trigger"),
			{Key: "cutoff", Label: "Cutoff frequency", Min: -250, Max: 250, Default: 0, Unit: " Hz"},
		},
		Inputs:  ports("Signal Input"),
		Outputs: ports("Low Pass Output", "Band Pass Output", "High Pass Output"),
		Lights:  ports("Power State"),
	}
}

// Filter is a power-gated one-pole multi-mode filter.
//
// While on, each frame reads the input into a working buffer and runs, for
// every connected output in the order low-pass, band-pass, high-pass, the
// matching one-pole stage in place on that buffer before writing it out. The
// stages share one filter state and one working buffer, so a connected
// low-pass output changes what the band-pass stage sees. While off, all
// three outputs carry 0 channels.
type Filter struct {
	bank        *onepole.Bank
	power       trigger.Latch
	voltages    *poly.Voltages
	maxChannels int

	powerParam  Param
	cutoffParam Param
	in          Input
	lowPass     Output
	bandPass    Output
	highPass    Output
	powerLight  Light
}

var _ Unit = (*Filter)(nil)

// NewFilter builds a Filter bound to ports.
func NewFilter(ctx Context, ports Ports) (*Filter, error) {
	r, err := newResolver("Filter", ctx, ports)
	if err != nil {
		return nil, err
	}

	bank, err := onepole.New(ctx.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("rack: Filter: %w", err)
	}

	f := &Filter{
		bank:        bank,
		voltages:    poly.New(),
		maxChannels: ctx.channelLimit(),
		powerParam:  r.param(FilterPowerParam),
		cutoffParam: r.param(FilterCutoffParam),
		in:          r.input(FilterSignalInput),
		lowPass:     r.output(FilterLowPassOutput),
		bandPass:    r.output(FilterBandPassOutput),
		highPass:    r.output(FilterHighPassOutput),
		powerLight:  r.light(FilterPowerLight),
	}
	if r.err != nil {
		return nil, r.err
	}

	return f, nil
}

// On reports whether the module is powered.
func (f *Filter) On() bool { return f.power.On() }

// State returns the shared filter state.
func (f *Filter) State() onepole.State { return f.bank.State() }

// Process runs one frame.
func (f *Filter) Process() {
	on := f.power.Update(trigger.High(f.powerParam.Value()))
	f.powerLight.SetBrightness(f.power.Brightness())

	if !on {
		f.disable()
		return
	}

	f.readInput()
	cutoff := f.cutoffParam.Value()
	buf := f.voltages.Samples()

	if f.lowPass.IsConnected() {
		f.bank.LowPassInPlace(buf, cutoff)
		emit(f.lowPass, buf)
	}

	if f.bandPass.IsConnected() {
		f.bank.BandPassInPlace(buf, cutoff)
		emit(f.bandPass, buf)
	}

	if f.highPass.IsConnected() {
		f.bank.HighPassInPlace(buf, cutoff)
		emit(f.highPass, buf)
	}
}

// Reset powers the module down and clears the filter state.
func (f *Filter) Reset() {
	f.power.Reset()
	f.bank.Reset()
	f.voltages.Clear()
}

func (f *Filter) readInput() {
	n := 0
	if f.in.IsConnected() {
		n = min(f.in.Channels(), f.maxChannels)
	}

	f.voltages.Resize(n)
	if n > 0 {
		f.in.ReadVoltages(f.voltages.Samples())
	}
}

func (f *Filter) disable() {
	f.lowPass.SetChannels(0)
	f.bandPass.SetChannels(0)
	f.highPass.SetChannels(0)
}

func emit(out Output, buf []float64) {
	out.SetChannels(len(buf))
	if len(buf) > 0 {
		out.WriteVoltages(buf)
	}
}
