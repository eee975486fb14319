// Package rack defines the contract between a modular host and the modules
// in this repository, and implements the Filter and Pass modules on top of it.
//
// A host owns the ports of a module instance: parameters, input and output
// jacks, and status lights. It injects them as a [Ports] value when it builds
// the module and then calls [Unit.Process] once per audio frame from a single
// goroutine. Modules read parameters and inputs, and write outputs and light
// brightness, only through those ports.
//
// [Panel] is an in-memory Ports implementation built from a module's
// [Config]. It is what the host package and the tests use.
//
// Modules:
//   - Filter: one input, low-pass/band-pass/high-pass outputs from a shared
//     one-pole state, a power button and a cutoff knob.
//   - Pass: three inputs summed or averaged into one output, with power, sum
//     and average buttons.
package rack
