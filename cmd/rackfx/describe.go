package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-modular/rack"
)

func printList(w io.Writer, reg *rack.Registry) {
	for _, slug := range reg.Slugs() {
		fmt.Fprintln(w, slug)
	}
}

func printDescription(w io.Writer, cfg rack.Config) {
	fmt.Fprintf(w, "%s\n\n", cfg.Slug)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tID\tKEY\tLABEL\tRANGE\tDEFAULT")

	for id, p := range cfg.Params {
		rng := fmt.Sprintf("%g..%g%s", p.Min, p.Max, p.Unit)
		if p.Button {
			rng = "button"
		}
		fmt.Fprintf(tw, "param\t%d\t%s\t%s\t%s\t%g\n", id, p.Key, p.Label, rng, p.Default)
	}
	for id, p := range cfg.Inputs {
		fmt.Fprintf(tw, "input\t%d\t-\t%s\t\t\n", id, p.Label)
	}
	for id, p := range cfg.Outputs {
		fmt.Fprintf(tw, "output\t%d\t-\t%s\t\t\n", id, p.Label)
	}
	for id, p := range cfg.Lights {
		fmt.Fprintf(tw, "light\t%d\t-\t%s\t\t\n", id, p.Label)
	}

	tw.Flush()
}
