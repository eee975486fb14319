package level

import (
	"math"

	"github.com/cwbudde/algo-modular/dsp/core"
)

// Stats holds level statistics for one channel.
type Stats struct {
	Frames        int
	DC            float64 // mean
	RMS           float64
	Peak          float64 // max |x|
	PeakPos       int
	CrestFactor   float64 // peak / RMS, 0 for silence
	ZeroCrossings int
}

// PeakDB returns the peak in dB relative to 1 V.
func (s Stats) PeakDB() float64 { return core.LinearToDB(s.Peak) }

// RMSDB returns the RMS level in dB relative to 1 V.
func (s Stats) RMSDB() float64 { return core.LinearToDB(s.RMS) }

// Calculate computes the statistics of signal in one pass.
func Calculate(signal []float64) Stats {
	var a Accumulator
	a.Update(signal)
	return a.Result()
}

// Accumulator collects level statistics across blocks.
type Accumulator struct {
	n       int
	mean    float64
	sumSq   float64
	peak    float64
	peakPos int
	zc      int
	last    float64
}

// Add feeds a single sample.
func (a *Accumulator) Add(x float64) {
	a.n++
	a.mean += (x - a.mean) / float64(a.n)
	a.sumSq += x * x

	if abs := math.Abs(x); abs > a.peak || a.n == 1 {
		a.peak = abs
		a.peakPos = a.n - 1
	}

	if a.n > 1 && a.last*x < 0 {
		a.zc++
	}
	a.last = x
}

// Update feeds a block of samples.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		a.Add(x)
	}
}

// Result returns the statistics of everything fed so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}

	rms := math.Sqrt(a.sumSq / float64(a.n))

	crest := 0.0
	if rms > 0 {
		crest = a.peak / rms
	}

	return Stats{
		Frames:        a.n,
		DC:            a.mean,
		RMS:           rms,
		Peak:          a.peak,
		PeakPos:       a.peakPos,
		CrestFactor:   crest,
		ZeroCrossings: a.zc,
	}
}

// Reset clears the accumulated data.
func (a *Accumulator) Reset() { *a = Accumulator{} }
