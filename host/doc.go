// Package host drives rack modules outside a plugin host: it steps a module
// frame by frame, applies parameter sets, presses buttons for exactly one
// frame, and adapts modules to beep streamers so audio files and other beep
// sources can be patched into their inputs.
package host
