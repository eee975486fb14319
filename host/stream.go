package host

import (
	"fmt"

	"github.com/gopxl/beep"

	"github.com/cwbudde/algo-modular/rack"
)

// Route patches a beep source into a module input. The left and right
// channels of the source become polyphonic channels 0 and 1.
type Route struct {
	Input  int
	Source beep.Streamer
}

type route struct {
	jack *rack.Jack
	src  beep.Streamer
	buf  [][2]float64
	n    int
	done bool
}

// Streamer runs a module as a beep.Streamer. Every stereo frame pulled from
// it steps the module once and reads one output jack back as stereo: a
// 1-channel output is duplicated to both sides, a silent output gives 0.
type Streamer struct {
	runner *Runner
	out    *rack.Jack
	routes []route
	err    error
}

var _ beep.Streamer = (*Streamer)(nil)

// NewStreamer connects output and every route's input on the runner's panel.
func NewStreamer(r *Runner, output int, routes ...Route) (*Streamer, error) {
	panel := r.Panel()

	out := panel.OutputJack(output)
	if out == nil {
		return nil, fmt.Errorf("host: %s has no output %d", panel.Config().Slug, output)
	}
	out.Connect()

	s := &Streamer{runner: r, out: out, routes: make([]route, 0, len(routes))}
	for _, rt := range routes {
		jack := panel.InputJack(rt.Input)
		if jack == nil {
			return nil, fmt.Errorf("host: %s has no input %d", panel.Config().Slug, rt.Input)
		}
		if rt.Source == nil {
			return nil, fmt.Errorf("host: nil source for input %d", rt.Input)
		}
		s.routes = append(s.routes, route{jack: jack, src: rt.Source})
	}

	return s, nil
}

// Stream implements beep.Streamer. Sources are read until the block is full
// or they drain. The block is as long as the longest source; inputs whose
// source has run dry read as disconnected.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	allDone := true

	for i := range s.routes {
		rt := &s.routes[i]
		rt.n = 0

		if !rt.done && cap(rt.buf) < len(samples) {
			rt.buf = make([][2]float64, len(samples))
		}

		for rt.n < len(samples) && !rt.done {
			m, more := rt.src.Stream(rt.buf[rt.n:len(samples)])
			rt.n += m

			if !more {
				rt.done = true
				if err := rt.src.Err(); err != nil && s.err == nil {
					s.err = err
				}
			} else if m == 0 {
				break
			}
		}

		allDone = allDone && rt.done
		n = max(n, rt.n)
	}

	for f := range n {
		for i := range s.routes {
			rt := &s.routes[i]
			if f < rt.n {
				rt.jack.SetVoltages(rt.buf[f][0], rt.buf[f][1])
			} else {
				rt.jack.Disconnect()
			}
		}

		s.runner.Step()
		samples[f] = s.frame()
	}

	return n, n > 0 || !allDone
}

// Err returns the first error reported by a source.
func (s *Streamer) Err() error { return s.err }

func (s *Streamer) frame() [2]float64 {
	switch s.out.Channels() {
	case 0:
		return [2]float64{}
	case 1:
		v := s.out.Voltage(0)
		return [2]float64{v, v}
	default:
		return [2]float64{s.out.Voltage(0), s.out.Voltage(1)}
	}
}
