package rack

// Panel is an in-memory Ports implementation: the host side of one module
// instance.
type Panel struct {
	cfg     Config
	knobs   []*Knob
	inputs  []*Jack
	outputs []*Jack
	lamps   []*Lamp
}

var _ Ports = (*Panel)(nil)

// NewPanel builds ports for cfg with knobs at their defaults, all jacks
// disconnected and all lights dark.
func NewPanel(cfg Config) *Panel {
	p := &Panel{
		cfg:     cfg,
		knobs:   make([]*Knob, len(cfg.Params)),
		inputs:  make([]*Jack, len(cfg.Inputs)),
		outputs: make([]*Jack, len(cfg.Outputs)),
		lamps:   make([]*Lamp, len(cfg.Lights)),
	}
	for i, pc := range cfg.Params {
		p.knobs[i] = NewKnob(pc)
	}
	for i := range p.inputs {
		p.inputs[i] = NewJack()
	}
	for i := range p.outputs {
		p.outputs[i] = NewJack()
	}
	for i := range p.lamps {
		p.lamps[i] = &Lamp{}
	}
	return p
}

// Config returns the configuration the panel was built from.
func (p *Panel) Config() Config { return p.cfg }

// Param implements Ports.
func (p *Panel) Param(id int) Param {
	if k := p.Knob(id); k != nil {
		return k
	}
	return nil
}

// Input implements Ports.
func (p *Panel) Input(id int) Input {
	if j := p.InputJack(id); j != nil {
		return j
	}
	return nil
}

// Output implements Ports.
func (p *Panel) Output(id int) Output {
	if j := p.OutputJack(id); j != nil {
		return j
	}
	return nil
}

// Light implements Ports.
func (p *Panel) Light(id int) Light {
	if l := p.Lamp(id); l != nil {
		return l
	}
	return nil
}

// Knob returns the parameter storage for id, or nil.
func (p *Panel) Knob(id int) *Knob {
	if id < 0 || id >= len(p.knobs) {
		return nil
	}
	return p.knobs[id]
}

// KnobByKey returns the parameter storage for key, or nil.
func (p *Panel) KnobByKey(key string) *Knob {
	return p.Knob(p.cfg.ParamIndex(key))
}

// InputJack returns input id, or nil.
func (p *Panel) InputJack(id int) *Jack {
	if id < 0 || id >= len(p.inputs) {
		return nil
	}
	return p.inputs[id]
}

// OutputJack returns output id, or nil.
func (p *Panel) OutputJack(id int) *Jack {
	if id < 0 || id >= len(p.outputs) {
		return nil
	}
	return p.outputs[id]
}

// Lamp returns light id, or nil.
func (p *Panel) Lamp(id int) *Lamp {
	if id < 0 || id >= len(p.lamps) {
		return nil
	}
	return p.lamps[id]
}
