package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/host"
	"github.com/cwbudde/algo-modular/rack"
)

// ErrInvalidSize is returned for FFT sizes that are not a power of two >= 16.
var ErrInvalidSize = errors.New("response: FFT size must be a power of two >= 16")

// Curve is the magnitude response of one module output.
type Curve struct {
	Output     int
	Label      string
	SampleRate float64

	// Impulse is the captured time-domain response.
	Impulse []float64

	// Freqs and MagnitudeDB cover the bins from DC to Nyquist inclusive.
	Freqs       []float64
	MagnitudeDB []float64
}

// At returns the magnitude in dB of the bin nearest to freqHz.
func (c Curve) At(freqHz float64) float64 {
	if len(c.Freqs) < 2 {
		return math.NaN()
	}

	step := c.Freqs[1] - c.Freqs[0]
	k := int(math.Round(freqHz / step))
	k = max(0, min(k, len(c.MagnitudeDB)-1))

	return c.MagnitudeDB[k]
}

// Filter measures every Filter output at cutoffHz using size-point FFTs.
// The result is indexed by output id.
func Filter(ctx rack.Context, cutoffHz float64, size int) ([]Curve, error) {
	outputs := rack.FilterConfig().Outputs
	curves := make([]Curve, len(outputs))

	for id := range outputs {
		c, err := FilterOutput(ctx, id, cutoffHz, size)
		if err != nil {
			return nil, err
		}
		curves[id] = c
	}

	return curves, nil
}

// FilterOutput measures a single Filter output.
func FilterOutput(ctx rack.Context, output int, cutoffHz float64, size int) (Curve, error) {
	if size < 16 || size&(size-1) != 0 {
		return Curve{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	ir, err := captureImpulse(ctx, output, cutoffHz, size)
	if err != nil {
		return Curve{}, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Curve{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, size)
	for i, v := range ir {
		src[i] = complex(v, 0)
	}

	spec := make([]complex128, size)
	if err := plan.Forward(spec, src); err != nil {
		return Curve{}, fmt.Errorf("response: forward FFT: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	c := Curve{
		Output:      output,
		Label:       rack.FilterConfig().Outputs[output].Label,
		SampleRate:  ctx.SampleRate,
		Impulse:     ir,
		Freqs:       make([]float64, bins),
		MagnitudeDB: mag,
	}
	for k := range bins {
		c.Freqs[k] = float64(k) * ctx.SampleRate / float64(size)
		c.MagnitudeDB[k] = core.LinearToDB(mag[k])
	}

	return c, nil
}

func captureImpulse(ctx rack.Context, output int, cutoffHz float64, size int) ([]float64, error) {
	r, err := host.NewRunner(nil, "Filter", ctx)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	out := r.Panel().OutputJack(output)
	if out == nil {
		return nil, fmt.Errorf("response: Filter has no output %d", output)
	}
	out.Connect()

	if err := r.Apply(host.Params{Num: map[string]float64{"cutoff": cutoffHz}}); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}
	if err := r.Press("power"); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	in := r.Panel().InputJack(rack.FilterSignalInput)
	ir := make([]float64, size)

	for n := range ir {
		x := 0.0
		if n == 0 {
			x = 1
		}
		in.SetVoltages(x)
		r.Step()
		ir[n] = out.Voltage(0)
	}

	return ir, nil
}
