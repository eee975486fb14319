package host

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownParam is returned when a parameter key is not declared by the
// module.
var ErrUnknownParam = errors.New("unknown parameter")

// Params holds numeric parameter values keyed by parameter key.
type Params struct {
	Num map[string]float64
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// Keys returns the parameter keys in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p.Num))
	for k := range p.Num {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseParams parses "key=value" pairs. Later pairs override earlier ones.
func ParseParams(pairs []string) (Params, error) {
	p := Params{Num: make(map[string]float64, len(pairs))}

	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return Params{}, fmt.Errorf("host: invalid parameter %q: want key=value", pair)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Params{}, fmt.Errorf("host: parameter %q: %w", key, err)
		}

		p.Num[key] = v
	}

	return p, nil
}
