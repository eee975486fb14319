package trigger

import "testing"

func TestHigh(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, false},
		{1, true},
		{0.999, false},
		{2, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := High(tt.v); got != tt.want {
			t.Fatalf("High(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestEdgeRisingOnly(t *testing.T) {
	var e Edge
	raw := []bool{false, true, true, false, true, false}
	want := []bool{false, true, false, false, true, false}
	for i := range raw {
		if got := e.Rising(raw[i]); got != want[i] {
			t.Fatalf("frame %d: Rising(%v) = %v, want %v", i, raw[i], got, want[i])
		}
	}
}

func TestLatchToggleSequence(t *testing.T) {
	var l Latch
	raw := []bool{false, true, true, false, true}
	want := []bool{false, true, true, true, false}
	for i := range raw {
		if got := l.Update(raw[i]); got != want[i] {
			t.Fatalf("frame %d: Update(%v) = %v, want %v", i, raw[i], got, want[i])
		}
	}
}

func TestLatchBrightness(t *testing.T) {
	var l Latch
	if l.Brightness() != 0 {
		t.Fatalf("Brightness() = %v, want 0", l.Brightness())
	}
	l.Update(true)
	if l.Brightness() != 1 {
		t.Fatalf("Brightness() = %v, want 1", l.Brightness())
	}
}

func TestLatchReset(t *testing.T) {
	var l Latch
	l.Update(true)
	l.Reset()
	if l.On() {
		t.Fatal("latch should be off after Reset")
	}
	// Held button counts as a fresh press after Reset.
	if !l.Update(true) {
		t.Fatal("expected rising edge after Reset")
	}
}

func TestSelectorRisingEdgeClearsOther(t *testing.T) {
	s := NewSelector(2)
	if got := s.Update(true, false); got != 0 {
		t.Fatalf("active = %d, want 0", got)
	}
	// Mode 0 stays held, mode 1 rises: 1 wins and 0 does not re-trigger.
	if got := s.Update(true, true); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
	if got := s.Update(true, true); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
	if s.IsActive(0) || !s.IsActive(1) {
		t.Fatal("expected only mode 1 active")
	}
}

func TestSelectorSimultaneousRiseHigherIndexWins(t *testing.T) {
	s := NewSelector(2)
	if got := s.Update(true, true); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
}

func TestSelectorClearKeepsEdgeHistory(t *testing.T) {
	s := NewSelector(2)
	s.Update(true, false)
	s.Clear()
	if s.Active() != None {
		t.Fatalf("active = %d, want None", s.Active())
	}
	if got := s.Update(true, false); got != None {
		t.Fatalf("held button re-triggered after Clear: active = %d", got)
	}
	s.Update(false, false)
	if got := s.Update(true, false); got != 0 {
		t.Fatalf("active = %d, want 0", got)
	}
}

func TestSelectorMissingStatesCountAsReleased(t *testing.T) {
	s := NewSelector(3)
	s.Update(false, false, true)
	if got := s.Update(); got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}
	if got := s.Update(false, false, true); got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}
}

func TestSelectorReset(t *testing.T) {
	s := NewSelector(2)
	s.Update(false, true)
	s.Reset()
	if s.Active() != None {
		t.Fatalf("active = %d, want None", s.Active())
	}
	if got := s.Update(false, true); got != 1 {
		t.Fatalf("active = %d, want 1 after Reset", got)
	}
}
