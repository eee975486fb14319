// Package onepole provides a multi-mode one-pole filter bank producing
// low-pass, band-pass and high-pass responses from a single set of
// recursive state.
//
// The three modes share one State: the previous low-pass output, the
// previous high-pass output and the previous input sample. The state is not
// kept per channel. Processing a polyphonic buffer walks the channels in
// index order and every channel inherits the history left by the channel
// before it, and every mode inherits the history left by the mode run before
// it. Callers that need the canonical module behaviour must run the modes in
// the order low, band, high within a frame.
//
// The smoothing coefficient for a cutoff f at sample rate fs is
//
//	omega = 2π·min(|f|, fs/2)/fs
//	alpha = omega / (omega + 1)
//
// so alpha is 0 for a 0 Hz cutoff (the output holds its history) and tends
// towards, but never reaches, 1.
//
// The band-pass mode derives two cutoffs BandPassSpreadHz below and above the
// requested one, and outputs the low-pass estimate minus the high-pass
// estimate.
package onepole
