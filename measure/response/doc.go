// Package response measures the frequency response of the Filter module.
//
// Each output is measured on its own: a fresh module is powered on with only
// that output patched, an impulse is fed into the signal input, and the
// captured impulse response is transformed with an FFT. Measuring outputs in
// isolation matters because the stages of a Filter cascade through a shared
// working buffer when several outputs are patched at once.
//
// # Usage
//
//	curves, err := response.Filter(rack.NewContext(), 100, 4096)
//	lp := curves[rack.FilterLowPassOutput]
//	fmt.Printf("%.1f dB at 1 kHz\n", lp.At(1000))
package response
