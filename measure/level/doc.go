// Package level summarises rendered module output: DC offset, RMS, peak,
// crest factor and zero crossings, per channel.
//
// [Accumulator] works incrementally on blocks of samples and gives the same
// result as [Calculate] on the concatenated signal. [Meter] wraps a
// beep.Streamer and measures both sides of every frame that passes through.
package level
