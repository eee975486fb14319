package rack

import "testing"

const testSampleRate = 48000.0

func testContext() Context {
	return Context{SampleRate: testSampleRate, MaxChannels: 16}
}

// press holds a button for one frame and processes one more frame with it
// released, so the next press is a fresh rising edge.
func press(u Unit, k *Knob) {
	k.SetValue(1)
	u.Process()
	k.SetValue(0)
	u.Process()
}

func newTestFilter(t *testing.T) (*Filter, *Panel) {
	t.Helper()
	panel := NewPanel(FilterConfig())
	f, err := NewFilter(testContext(), panel)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	return f, panel
}

func newTestPass(t *testing.T) (*Pass, *Panel) {
	t.Helper()
	panel := NewPanel(PassConfig())
	p, err := NewPass(testContext(), panel)
	if err != nil {
		t.Fatalf("NewPass() error = %v", err)
	}
	return p, panel
}
