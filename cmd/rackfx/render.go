package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/host"
	"github.com/cwbudde/algo-modular/measure/level"
	"github.com/cwbudde/algo-modular/rack"
)

const resampleQuality = 4

type renderConfig struct {
	module string
	inputs []string
	out    string
	output int
	params host.Params
	mode   string
	power  bool
	bits   int
}

func render(cfg renderConfig) error {
	if len(cfg.inputs) == 0 {
		return errors.New("no input files: use -in")
	}
	if cfg.out == "" {
		return errors.New("no output file: use -out")
	}
	if cfg.bits != 8 && cfg.bits != 16 && cfg.bits != 24 {
		return fmt.Errorf("invalid bit depth %d: want 8, 16 or 24", cfg.bits)
	}

	format := beep.Format{NumChannels: 2, Precision: cfg.bits / 8}
	routes := make([]host.Route, 0, len(cfg.inputs))

	for i, path := range cfg.inputs {
		s, inFormat, err := decodeFile(path)
		if err != nil {
			return err
		}
		defer s.Close()

		if i == 0 {
			format.SampleRate = inFormat.SampleRate
		}

		logger.Debug("input", "port", i, "path", path,
			"rate", int(inFormat.SampleRate), "channels", inFormat.NumChannels, "frames", s.Len())

		var src beep.Streamer = s
		if inFormat.SampleRate != format.SampleRate {
			logger.Info("resampling input", "path", path,
				"from", int(inFormat.SampleRate), "to", int(format.SampleRate))
			src = beep.Resample(resampleQuality, inFormat.SampleRate, format.SampleRate, s)
		}

		routes = append(routes, host.Route{Input: i, Source: src})
	}

	ctx := rack.NewContext(core.WithSampleRate(float64(format.SampleRate)))

	r, err := host.NewRunner(nil, cfg.module, ctx)
	if err != nil {
		return err
	}
	if n := len(r.Panel().Config().Inputs); len(routes) > n {
		return fmt.Errorf("%s has %d inputs, got %d files", cfg.module, n, len(routes))
	}

	if err := r.Apply(cfg.params); err != nil {
		return err
	}
	if err := pressButtons(r, cfg); err != nil {
		return err
	}

	st, err := host.NewStreamer(r, cfg.output, routes...)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	defer out.Close()

	meter := level.NewMeter(st)
	if err := wav.Encode(out, meter, format); err != nil {
		return fmt.Errorf("encode %s: %w", cfg.out, err)
	}
	if err := st.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	logger.Info("rendered", "module", r.Panel().Config().Slug, "output", cfg.output,
		"frames", r.Frames(), "path", cfg.out)
	logLevels("left", meter.Left())
	logLevels("right", meter.Right())

	return out.Close()
}

// decodeFile opens a WAV or MP3 file, chosen by extension.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	default:
		s, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return s, format, nil
}

func pressButtons(r *host.Runner, cfg renderConfig) error {
	if cfg.power {
		if err := r.Press("power"); err != nil {
			return err
		}
	}

	button, err := modeButton(cfg.mode)
	if err != nil || button == "" {
		return err
	}
	if r.Panel().KnobByKey(button) == nil {
		logger.Warn("module has no mode buttons, ignoring -mode", "module", cfg.module, "mode", cfg.mode)
		return nil
	}

	return r.Press(button)
}

func logLevels(side string, s level.Stats) {
	logger.Info("level", "side", side,
		"peak_db", fmt.Sprintf("%.1f", s.PeakDB()), "rms_db", fmt.Sprintf("%.1f", s.RMSDB()),
		"dc", s.DC, "crest", s.CrestFactor)
	if s.Peak > 1 {
		logger.Warn("output clips", "side", side, "peak", s.Peak, "frame", s.PeakPos)
	}
}
