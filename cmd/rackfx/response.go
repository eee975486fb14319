package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-modular/measure/response"
	"github.com/cwbudde/algo-modular/rack"
)

var responseFreqs = []float64{0, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}

func printResponse(w io.Writer, ctx rack.Context, cutoffHz float64, size int) error {
	curves, err := response.Filter(ctx, cutoffHz, size)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Filter response, cutoff %g Hz, %g Hz, %d-point FFT\n\n", cutoffHz, ctx.SampleRate, size)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Hz\t")
	for _, c := range curves {
		fmt.Fprintf(tw, "%s\t", c.Label)
	}
	fmt.Fprintln(tw)

	nyquist := ctx.SampleRate / 2
	for _, f := range responseFreqs {
		if f > nyquist {
			break
		}
		fmt.Fprintf(tw, "%g\t", f)
		for _, c := range curves {
			fmt.Fprintf(tw, "%.2f dB\t", c.At(f))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
