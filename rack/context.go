package rack

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/poly"
)

// ErrInvalidSampleRate is returned when a module is built with a sample rate
// that is not finite and positive.
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// Context provides the environment a module is built for. The sample rate is
// fixed for the lifetime of the module.
type Context struct {
	SampleRate  float64
	MaxChannels int
}

// NewContext builds a Context from processor options.
func NewContext(opts ...core.ProcessorOption) Context {
	cfg := core.ApplyProcessorOptions(opts...)
	return Context{SampleRate: cfg.SampleRate, MaxChannels: cfg.MaxChannels}
}

// Validate reports whether the context can be used to build modules.
func (c Context) Validate() error {
	if !core.IsFinite(c.SampleRate) || c.SampleRate <= 0 {
		return fmt.Errorf("rack: %w: %f", ErrInvalidSampleRate, c.SampleRate)
	}
	return nil
}

// channelLimit returns the polyphony limit, treating unset as full polyphony.
func (c Context) channelLimit() int {
	if c.MaxChannels <= 0 {
		return poly.MaxChannels
	}
	return poly.ClampChannels(c.MaxChannels)
}
