package host

import (
	"fmt"

	"github.com/cwbudde/algo-modular/rack"
)

// Runner owns one module instance and its panel and steps it frame by frame.
type Runner struct {
	unit    rack.Unit
	panel   *rack.Panel
	frames  int64
	pressed []*rack.Knob
}

// NewRunner builds the module registered under slug.
func NewRunner(reg *rack.Registry, slug string, ctx rack.Context) (*Runner, error) {
	if reg == nil {
		reg = rack.DefaultRegistry()
	}

	unit, panel, err := reg.New(slug, ctx)
	if err != nil {
		return nil, err
	}

	return &Runner{
		unit:    unit,
		panel:   panel,
		pressed: make([]*rack.Knob, 0, len(panel.Config().Params)),
	}, nil
}

// Unit returns the module instance.
func (r *Runner) Unit() rack.Unit { return r.unit }

// Panel returns the module's ports.
func (r *Runner) Panel() *rack.Panel { return r.panel }

// Frames returns the number of frames processed.
func (r *Runner) Frames() int64 { return r.frames }

// Press holds the button key down for the next frame only.
func (r *Runner) Press(key string) error {
	k := r.panel.KnobByKey(key)
	if k == nil {
		return fmt.Errorf("host: %w: %s", ErrUnknownParam, key)
	}

	k.SetValue(1)
	r.pressed = append(r.pressed, k)

	return nil
}

// Apply sets every parameter in p. Unknown keys are rejected before any
// value is changed.
func (r *Runner) Apply(p Params) error {
	keys := p.Keys()
	for _, key := range keys {
		if r.panel.KnobByKey(key) == nil {
			return fmt.Errorf("host: %w: %s", ErrUnknownParam, key)
		}
	}

	for _, key := range keys {
		r.panel.KnobByKey(key).SetValue(p.Num[key])
	}

	return nil
}

// Step processes one frame and releases any buttons pressed for it.
func (r *Runner) Step() {
	r.unit.Process()

	for _, k := range r.pressed {
		k.SetValue(0)
	}
	r.pressed = r.pressed[:0]
	r.frames++
}

// Reset resets the module and the frame counter. Knob values are kept.
func (r *Runner) Reset() {
	r.unit.Reset()
	for _, k := range r.pressed {
		k.SetValue(0)
	}
	r.pressed = r.pressed[:0]
	r.frames = 0
}
