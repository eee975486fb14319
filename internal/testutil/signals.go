package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates seeded white noise in [-amplitude, amplitude).
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse returns a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC returns n samples held at value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns n samples of 1 V.
func Ones(n int) []float64 {
	return DC(1, n)
}

// Stereo interleaves left and right into beep frames. The shorter side is
// padded with zeros.
func Stereo(left, right []float64) [][2]float64 {
	out := make([][2]float64, max(len(left), len(right)))
	for i := range out {
		if i < len(left) {
			out[i][0] = left[i]
		}
		if i < len(right) {
			out[i][1] = right[i]
		}
	}
	return out
}

// Left extracts the left channel of frames.
func Left(frames [][2]float64) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f[0]
	}
	return out
}

// Right extracts the right channel of frames.
func Right(frames [][2]float64) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f[1]
	}
	return out
}
