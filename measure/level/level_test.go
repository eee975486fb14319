package level

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-modular/internal/testutil"
)

func TestCalculateSquareWave(t *testing.T) {
	s := Calculate([]float64{1, -1, 1, -1})

	if s.Frames != 4 || math.Abs(s.DC) > 1e-15 || s.RMS != 1 || s.Peak != 1 || s.PeakPos != 0 {
		t.Fatalf("stats = %+v", s)
	}
	if s.CrestFactor != 1 {
		t.Fatalf("CrestFactor = %v, want 1", s.CrestFactor)
	}
	if s.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings = %d, want 3", s.ZeroCrossings)
	}
	if s.PeakDB() != 0 || s.RMSDB() != 0 {
		t.Fatalf("dB levels = %v, %v, want 0", s.PeakDB(), s.RMSDB())
	}
}

func TestCalculateEmptyAndSilent(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("empty stats = %+v", s)
	}

	s := Calculate(make([]float64, 8))
	if s.Frames != 8 || s.CrestFactor != 0 || s.ZeroCrossings != 0 {
		t.Fatalf("silent stats = %+v", s)
	}
	if !math.IsInf(s.PeakDB(), -1) {
		t.Fatalf("PeakDB() = %v, want -Inf", s.PeakDB())
	}
}

func TestCalculatePeakPosition(t *testing.T) {
	s := Calculate([]float64{0.1, -0.2, 0.9, -0.95, 0.3})
	if s.Peak != 0.95 || s.PeakPos != 3 {
		t.Fatalf("peak = %v at %d, want 0.95 at 3", s.Peak, s.PeakPos)
	}
}

func TestAccumulatorMatchesCalculate(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 2, 1000)
	want := Calculate(signal)

	var a Accumulator
	for start := 0; start < len(signal); start += 37 {
		a.Update(signal[start:min(start+37, len(signal))])
	}

	if got := a.Result(); got != want {
		t.Fatalf("blocked = %+v\nwhole = %+v", got, want)
	}

	a.Reset()
	if a.Result() != (Stats{}) {
		t.Fatal("Reset() kept data")
	}
}

func TestMeterPassesFramesThrough(t *testing.T) {
	frames := testutil.Stereo([]float64{0.5, -0.5, 0.5}, []float64{0.25, 0.25, 0.25})
	m := NewMeter(testutil.NewSource(frames))

	got := testutil.Drain(m, 2)
	testutil.RequireFramesNearlyEqual(t, got, frames, 0)

	if l := m.Left(); l.Frames != 3 || l.Peak != 0.5 || l.ZeroCrossings != 2 {
		t.Fatalf("left = %+v", l)
	}
	if r := m.Right(); r.DC != 0.25 || r.CrestFactor != 1 {
		t.Fatalf("right = %+v", r)
	}
	if m.Err() != nil {
		t.Fatalf("Err() = %v", m.Err())
	}
}
