package main

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// expandPaths resolves a leading ~ in every path.
func expandPaths(paths []string) ([]string, error) {
	out := make([]string, len(paths))
	for i, p := range paths {
		expanded, err := homedir.Expand(p)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", p, err)
		}
		out[i] = expanded
	}
	return out, nil
}

// modeButton maps a -mode value to the Pass button that selects it.
func modeButton(mode string) (string, error) {
	switch strings.ToLower(mode) {
	case "":
		return "", nil
	case "sum":
		return "sum", nil
	case "avg", "average":
		return "avg", nil
	default:
		return "", fmt.Errorf("invalid mode %q: want sum or avg", mode)
	}
}
