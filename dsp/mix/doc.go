// Package mix combines several polyphonic buses into one.
//
// An Accumulator adds buses channel-wise into a growable buffer and counts
// the channels it has seen. The count is the plain sum of each bus's channel
// count, not the number of distinct channel slots: a 2-channel bus and a
// 1-channel bus give a 2-slot buffer and a count of 3. Average divides by
// that count.
package mix
