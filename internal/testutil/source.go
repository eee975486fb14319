package testutil

import "github.com/gopxl/beep"

// Source is a beep.Streamer over fixed frames. Chunk limits how many frames
// a single Stream call returns; 0 means unlimited. Fail is reported from Err
// once the frames are drained.
type Source struct {
	Frames [][2]float64
	Chunk  int
	Fail   error

	pos  int
	done bool
}

var _ beep.Streamer = (*Source)(nil)

// NewSource returns a streamer over frames.
func NewSource(frames [][2]float64) *Source {
	return &Source{Frames: frames}
}

func (s *Source) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.Frames) {
		s.done = true
		return 0, false
	}

	want := len(samples)
	if s.Chunk > 0 {
		want = min(want, s.Chunk)
	}

	n := copy(samples[:want], s.Frames[s.pos:])
	s.pos += n

	return n, true
}

func (s *Source) Err() error {
	if s.done {
		return s.Fail
	}
	return nil
}

// Drain pulls everything from st in blocks of size frames.
func Drain(st beep.Streamer, size int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, size)
	for {
		n, ok := st.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}
