// Package trigger provides the edge-triggered latches that front-panel
// buttons drive: a rising-edge detector, a toggling power latch and a
// mutually exclusive mode selector.
//
// All types are frame-driven: call Update exactly once per frame with the
// raw button state. None of them is safe for concurrent use.
package trigger
