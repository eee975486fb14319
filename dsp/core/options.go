package core

// ProcessorConfig defines the settings a host fixes for a module instance.
type ProcessorConfig struct {
	SampleRate  float64
	MaxChannels int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults of a typical modular host.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  48000,
		MaxChannels: 16,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithMaxChannels sets the polyphony limit. Values outside [1, 16] are ignored.
func WithMaxChannels(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 && n <= 16 {
			cfg.MaxChannels = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
