package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modular/dsp/core"
)

// BandPassSpreadHz is the distance of the band-pass corner cutoffs from the
// requested cutoff.
const BandPassSpreadHz = 5.0

// Alpha returns the one-pole smoothing coefficient for cutoffHz at
// sampleRate. The sign of cutoffHz is ignored and the cutoff is clamped to
// Nyquist. sampleRate must be > 0.
func Alpha(cutoffHz, sampleRate float64) float64 {
	cutoff := math.Abs(cutoffHz)
	if nyquist := core.Nyquist(sampleRate); cutoff > nyquist {
		cutoff = nyquist
	}

	omega := 2 * math.Pi * cutoff / sampleRate

	return omega / (omega + 1)
}

// State contains the shared recursion history for save/restore workflows.
type State struct {
	LowPass  float64
	HighPass float64
	Input    float64
}

// Bank is a stateful low/band/high-pass one-pole filter bank.
type Bank struct {
	sampleRate float64
	state      State
}

// New constructs a Bank with zeroed state.
func New(sampleRate float64) (*Bank, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("onepole: sample rate must be > 0 and finite: %f", sampleRate)
	}

	return &Bank{sampleRate: sampleRate}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Alpha returns the coefficient for cutoffHz at the bank's sample rate.
func (b *Bank) Alpha(cutoffHz float64) float64 { return Alpha(cutoffHz, b.sampleRate) }

// Reset clears the recursion history.
func (b *Bank) Reset() { b.state = State{} }

// State returns a copy of the current state.
func (b *Bank) State() State { return b.state }

// SetState restores an externally saved state.
func (b *Bank) SetState(state State) error {
	if !core.IsFinite(state.LowPass) || !core.IsFinite(state.HighPass) || !core.IsFinite(state.Input) {
		return fmt.Errorf("onepole: state contains NaN or Inf")
	}

	b.state = state

	return nil
}

// LowPassInPlace filters buf channel by channel:
//
//	y = alpha*x + (1-alpha)*prevLowPass
func (b *Bank) LowPassInPlace(buf []float64, cutoffHz float64) {
	alpha := b.Alpha(cutoffHz)
	s := &b.state

	for i, x := range buf {
		y := alpha*x + (1-alpha)*s.LowPass
		s.LowPass = y
		buf[i] = y
	}
}

// BandPassInPlace filters buf channel by channel with corner cutoffs
// |cutoffHz-BandPassSpreadHz| and |cutoffHz+BandPassSpreadHz|.
func (b *Bank) BandPassInPlace(buf []float64, cutoffHz float64) {
	alphaLow := b.Alpha(math.Abs(cutoffHz - BandPassSpreadHz))
	alphaHigh := b.Alpha(math.Abs(cutoffHz + BandPassSpreadHz))
	s := &b.state

	for i, x := range buf {
		lowPass := alphaLow*x + (1-alphaLow)*s.LowPass
		s.LowPass = lowPass

		highPass := alphaHigh * (s.HighPass + x - s.Input)
		s.HighPass = highPass
		s.Input = x

		buf[i] = lowPass - highPass
	}
}

// HighPassInPlace filters buf channel by channel:
//
//	y = alpha*(prevHighPass + x - prevInput)
//
// Both prevHighPass and prevInput take the new output value, so a bank that
// only ever runs this mode scales its input by alpha.
func (b *Bank) HighPassInPlace(buf []float64, cutoffHz float64) {
	alpha := b.Alpha(cutoffHz)
	s := &b.state

	for i, x := range buf {
		y := alpha * (s.HighPass + x - s.Input)
		s.HighPass = y
		s.Input = y
		buf[i] = y
	}
}
