// Command rackfx runs a rack module over WAV files.
//
// Usage:
//
//	rackfx [flags]
//
// Each -in file (WAV or MP3) is patched, in order, into the module's inputs; the left and
// right channels of a file become polyphonic channels 0 and 1. The selected
// output is written to -out as a stereo WAV at the sample rate of the first
// input. Buttons listed by -power and -mode are pressed on the first frame.
//
// Examples:
//
//	rackfx -list
//	rackfx -describe -module Pass
//	rackfx -module Filter -param cutoff=120 -output 2 -in ~/drums.wav -out hp.wav
//	rackfx -module Pass -mode avg -in a.wav -in b.wav -in c.wav -out mix.wav
//	rackfx -response -param cutoff=100 -fft 8192
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/host"
	"github.com/cwbudde/algo-modular/rack"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rackfx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var inputs, params stringList
	module := fs.String("module", "Filter", "module slug")
	fs.Var(&inputs, "in", "input WAV or MP3 file, repeat for further inputs")
	fs.Var(&params, "param", "parameter as key=value, repeatable")
	out := fs.String("out", "", "output WAV file")
	output := fs.Int("output", 0, "output port id to record")
	mode := fs.String("mode", "", "Pass mode to select: sum or avg")
	power := fs.Bool("power", true, "press the power button on the first frame")
	bits := fs.Int("bits", 16, "output bit depth: 8, 16 or 24")
	list := fs.Bool("list", false, "list available modules")
	describe := fs.Bool("describe", false, "describe the module's ports and parameters")
	showResponse := fs.Bool("response", false, "print the Filter frequency response")
	fftSize := fs.Int("fft", 4096, "FFT size for -response")
	rate := fs.Float64("rate", 48000, "sample rate for -response")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", "auto", "log format: auto, text or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rackfx [flags]\n\n")
		fmt.Fprintf(stderr, "Runs a rack module over WAV files.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rackfx -describe -module Pass\n")
		fmt.Fprintf(stderr, "  rackfx -module Filter -param cutoff=120 -output 2 -in in.wav -out hp.wav\n")
		fmt.Fprintf(stderr, "  rackfx -module Pass -mode avg -in a.wav -in b.wav -out mix.wav\n")
		fmt.Fprintf(stderr, "  rackfx -response -param cutoff=100\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if err := initLogger(stderr, *logLevel, *logFormat); err != nil {
		return err
	}

	reg := rack.DefaultRegistry()

	if *list {
		printList(stdout, reg)
		return nil
	}

	m, ok := reg.Lookup(*module)
	if !ok {
		return fmt.Errorf("%w: %s (use -list to see available)", rack.ErrUnknownModule, *module)
	}

	if *describe {
		printDescription(stdout, m.Config)
		return nil
	}

	p, err := host.ParseParams(params)
	if err != nil {
		return err
	}

	if *showResponse {
		if m.Config.Slug != "Filter" {
			return fmt.Errorf("-response measures the Filter module, not %s", m.Config.Slug)
		}
		ctx := rack.NewContext(core.WithSampleRate(*rate))
		return printResponse(stdout, ctx, p.GetNum("cutoff", 0), *fftSize)
	}

	paths, err := expandPaths(inputs)
	if err != nil {
		return err
	}
	outPath, err := expandPaths([]string{*out})
	if err != nil {
		return err
	}

	return render(renderConfig{
		module: m.Config.Slug,
		inputs: paths,
		out:    outPath[0],
		output: *output,
		params: p,
		mode:   *mode,
		power:  *power,
		bits:   *bits,
	})
}
