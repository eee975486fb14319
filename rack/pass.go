package rack

import (
	"github.com/cwbudde/algo-modular/dsp/mix"
	"github.com/cwbudde/algo-modular/dsp/poly"
	"github.com/cwbudde/algo-modular/dsp/trigger"
)

// Pass port ids.
const (
	PassPowerParam = iota
	PassSumParam
	PassAvgParam
)

const (
	PassTrack1Input = iota
	PassTrack2Input
	PassTrack3Input
	passInputs
)

const (
	PassAudioOutput = iota
)

const (
	PassPowerLight = iota
	PassSumLight
	PassAvgLight
)

// Selector indices, in evaluation order.
const (
	passModeSum = iota
	passModeAvg
)

// PassConfig describes the Pass module.
func PassConfig() Config {
	return Config{
		Slug: "Pass",
		Params: []ParamConfig{
			button("power", "Power Trigger"),
			button("sum", "Sum Trigger"),
			button("avg", "AVG Trigger"),
		},
		Inputs:  ports("Track 1", "Track 2", "Track 3"),
		Outputs: ports("Audio Output"),
		Lights:  ports("Power Status", "Sum Status", "Avg Status"),
	}
}

// Pass sums or averages three polyphonic tracks into one output.
//
// Sum and average are mutually exclusive modes selected by rising edges on
// their buttons; both are cleared when the module is powered off. While a
// mode is active, each frame accumulates every connected track, channel by
// channel, and writes the result declared as a single channel but carrying
// every accumulated slot. Average divides by the total channel count of all
// connected tracks.
type Pass struct {
	power       trigger.Latch
	modes       *trigger.Selector
	acc         *mix.Accumulator
	maxChannels int

	scratch [passInputs][poly.MaxChannels]float64
	buses   [passInputs][]float64

	powerParam Param
	sumParam   Param
	avgParam   Param
	inputs     [passInputs]Input
	out        Output
	powerLight Light
	sumLight   Light
	avgLight   Light
}

var _ Unit = (*Pass)(nil)

// NewPass builds a Pass bound to ports.
func NewPass(ctx Context, ports Ports) (*Pass, error) {
	r, err := newResolver("Pass", ctx, ports)
	if err != nil {
		return nil, err
	}

	p := &Pass{
		modes:       trigger.NewSelector(2),
		acc:         mix.NewAccumulator(),
		maxChannels: ctx.channelLimit(),
		powerParam:  r.param(PassPowerParam),
		sumParam:    r.param(PassSumParam),
		avgParam:    r.param(PassAvgParam),
		out:         r.output(PassAudioOutput),
		powerLight:  r.light(PassPowerLight),
		sumLight:    r.light(PassSumLight),
		avgLight:    r.light(PassAvgLight),
	}
	for i := range p.inputs {
		p.inputs[i] = r.input(PassTrack1Input + i)
	}
	if r.err != nil {
		return nil, r.err
	}

	return p, nil
}

// On reports whether the module is powered.
func (p *Pass) On() bool { return p.power.On() }

// Mode returns the active combine mode.
func (p *Pass) Mode() mix.Mode {
	switch p.modes.Active() {
	case passModeSum:
		return mix.ModeSum
	case passModeAvg:
		return mix.ModeAverage
	default:
		return mix.ModeOff
	}
}

// Process runs one frame.
func (p *Pass) Process() {
	on := p.power.Update(trigger.High(p.powerParam.Value()))
	p.powerLight.SetBrightness(p.power.Brightness())

	if !on {
		p.disable()
		return
	}

	p.modes.Update(trigger.High(p.sumParam.Value()), trigger.High(p.avgParam.Value()))
	p.sumLight.SetBrightness(trigger.Brightness(p.modes.IsActive(passModeSum)))
	p.avgLight.SetBrightness(trigger.Brightness(p.modes.IsActive(passModeAvg)))

	mode := p.Mode()
	if mode == mix.ModeOff {
		return
	}

	for i, in := range p.inputs {
		p.buses[i] = nil
		if !in.IsConnected() {
			continue
		}
		n := poly.ClampChannels(min(in.Channels(), p.maxChannels))
		n = in.ReadVoltages(p.scratch[i][:n])
		p.buses[i] = p.scratch[i][:n]
	}

	if !p.acc.Combine(mode, p.buses[:]...) {
		return
	}

	p.out.SetChannels(1)
	p.out.WriteVoltages(p.acc.Samples())
}

// Reset powers the module down and clears modes and the accumulator.
func (p *Pass) Reset() {
	p.power.Reset()
	p.modes.Reset()
	p.acc.Reset()
}

func (p *Pass) disable() {
	p.out.SetChannels(0)
	p.modes.Clear()
	p.sumLight.SetBrightness(0)
	p.avgLight.SetBrightness(0)
}
