// Package poly provides the reusable polyphonic voltage buffer that modules
// keep across frames. A buffer holds one sample per channel, at most
// MaxChannels of them, and grows or shrinks without reallocating once its
// backing array has reached full polyphony.
package poly
