package mix

import (
	"testing"

	"github.com/cwbudde/algo-modular/internal/testutil"
)

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		ModeOff:     "off",
		ModeSum:     "sum",
		ModeAverage: "avg",
		Mode(9):     "unknown",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		buses    [][]float64
		want     []float64
		channels int
		ok       bool
	}{
		{
			name:     "sum",
			mode:     ModeSum,
			buses:    [][]float64{{2, 4}, {6}, nil},
			want:     []float64{8, 4},
			channels: 3,
			ok:       true,
		},
		{
			name:     "average divides by channel total",
			mode:     ModeAverage,
			buses:    [][]float64{{2, 4}, {6}, nil},
			want:     []float64{8.0 / 3, 4.0 / 3},
			channels: 3,
			ok:       true,
		},
		{
			name:     "later bus widens buffer",
			mode:     ModeSum,
			buses:    [][]float64{{1}, {1, 2, 3}},
			want:     []float64{2, 2, 3},
			channels: 4,
			ok:       true,
		},
		{
			name:     "all disconnected",
			mode:     ModeAverage,
			buses:    [][]float64{nil, nil, nil},
			want:     []float64{},
			channels: 0,
			ok:       false,
		},
		{
			name:     "connected but empty",
			mode:     ModeSum,
			buses:    [][]float64{{}},
			want:     []float64{},
			channels: 0,
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccumulator()
			ok := a.Combine(tt.mode, tt.buses...)
			if ok != tt.ok {
				t.Fatalf("Combine() = %v, want %v", ok, tt.ok)
			}
			if a.Channels() != tt.channels {
				t.Fatalf("Channels() = %d, want %d", a.Channels(), tt.channels)
			}
			testutil.RequireSliceNearlyEqual(t, a.Samples(), tt.want, 1e-12)
		})
	}
}

func TestCombineOffLeavesState(t *testing.T) {
	a := NewAccumulator()
	a.Combine(ModeSum, []float64{1, 2})
	if a.Combine(ModeOff, []float64{5}) {
		t.Fatal("ModeOff should not accumulate")
	}
	testutil.RequireSliceNearlyEqual(t, a.Samples(), []float64{1, 2}, 0)
}

func TestCombineResetsBetweenFrames(t *testing.T) {
	a := NewAccumulator()
	a.Combine(ModeSum, []float64{1, 1, 1})
	a.Combine(ModeSum, []float64{4})
	testutil.RequireSliceNearlyEqual(t, a.Samples(), []float64{4}, 0)
	if a.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", a.Channels())
	}
}

func TestAddTruncatesToMaxChannels(t *testing.T) {
	a := NewAccumulator()
	a.Add(testutil.Ones(20))
	if a.Len() != 16 || a.Channels() != 16 {
		t.Fatalf("Len()=%d Channels()=%d, want 16/16", a.Len(), a.Channels())
	}
}

func TestAverageDividesExactly(t *testing.T) {
	a := NewAccumulator()
	if !a.Combine(ModeAverage, []float64{5, 3}, []float64{0}) {
		t.Fatal("Combine() = false, want true")
	}
	// 5*(1.0/3) rounds differently from 5/3.
	testutil.RequireSliceNearlyEqual(t, a.Samples(), []float64{5.0 / 3, 3.0 / 3}, 0)
}

func TestAverageWithoutChannelsIsNoOp(t *testing.T) {
	a := NewAccumulator()
	a.Average()
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
}

func TestAccumulateDoesNotAllocate(t *testing.T) {
	a := NewAccumulator()
	b1 := []float64{1, 2, 3, 4}
	b2 := []float64{5, 6}
	allocs := testing.AllocsPerRun(100, func() {
		a.Reset()
		a.Add(b1)
		a.Add(b2)
		a.Average()
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
}
