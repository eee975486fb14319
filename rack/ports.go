package rack

// Input is the read side of a jack.
type Input interface {
	IsConnected() bool
	Channels() int
	// ReadVoltages copies up to Channels() samples into dst and returns the
	// number copied.
	ReadVoltages(dst []float64) int
}

// Output is the write side of a jack.
type Output interface {
	IsConnected() bool
	// SetChannels declares the channel count. 0 silences the output.
	SetChannels(n int)
	// WriteVoltages stores src. It may carry more samples than the declared
	// channel count.
	WriteVoltages(src []float64)
}

// Param is a host-owned parameter value, refreshed by the host between frames.
type Param interface {
	Value() float64
}

// Light receives a status brightness in [0, 1].
type Light interface {
	SetBrightness(b float64)
}

// Ports gives a module typed access to the ports the host owns for it.
// Accessors return nil for unknown ids.
type Ports interface {
	Param(id int) Param
	Input(id int) Input
	Output(id int) Output
	Light(id int) Light
}

// Unit is a module instance driven by the host once per frame.
type Unit interface {
	// Process runs one frame. It never blocks and never allocates in steady
	// state.
	Process()
	// Reset returns the module to its construction state.
	Reset()
}
