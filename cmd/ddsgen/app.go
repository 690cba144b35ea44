// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/ddsgen"
	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/formats/aiff"
	"github.com/ik5/ddsgen/formats/mp3"
	"github.com/ik5/ddsgen/formats/vorbis"
	"github.com/ik5/ddsgen/formats/wav"
	"github.com/ik5/ddsgen/oscillator"
	"github.com/ik5/ddsgen/wavetable"
	"github.com/urfave/cli"
)

var (
	errUnknownWaveform      = errors.New("unknown waveform")
	errUnknownResolution    = errors.New("unknown resolution")
	errUnknownInterpolation = errors.New("unknown interpolation mode")
	errUnknownNote          = errors.New("unknown note")
	errUnsupportedTable     = errors.New("unsupported wavetable file format")
	errInvalidDuration      = errors.New("duration must be positive")
	errTableNeedsUserWave   = errors.New("--table only applies to the user waveform")
)

// config is the parsed command line.
type config struct {
	Wave          string
	Freq          float64
	Note          string
	Rate          int
	OutRate       int
	Amplitude     float64
	Resolution    string
	Interpolation string
	Duration      time.Duration
	Table         string
	Output        string
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ddsgen"
	app.Usage = "render a direct digital synthesis tone to a WAV file"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "wave, w",
			Usage:  "waveform: sine, square, triangle, sawtooth or user (user with --table)",
			Value:  oscillator.Sine.String(),
			EnvVar: "DDSGEN_WAVE",
		},
		cli.Float64Flag{
			Name:   "freq, f",
			Usage:  "output frequency in Hz",
			Value:  440,
			EnvVar: "DDSGEN_FREQ",
		},
		cli.StringFlag{
			Name:   "note, n",
			Usage:  "note name such as A4 or C#5; overrides --freq",
			EnvVar: "DDSGEN_NOTE",
		},
		cli.IntFlag{
			Name:   "rate, r",
			Usage:  "oscillator sample rate in Hz",
			Value:  48000,
			EnvVar: "DDSGEN_RATE",
		},
		cli.IntFlag{
			Name:   "out-rate",
			Usage:  "WAV sample rate in Hz (0 = same as --rate)",
			EnvVar: "DDSGEN_OUT_RATE",
		},
		cli.Float64Flag{
			Name:   "amplitude, a",
			Usage:  "amplitude in percent, 0 to 100",
			Value:  100,
			EnvVar: "DDSGEN_AMPLITUDE",
		},
		cli.StringFlag{
			Name:   "resolution",
			Usage:  "table resolution: 8x256, 8x1024 or 16x1024",
			Value:  oscillator.Res8x256.String(),
			EnvVar: "DDSGEN_RESOLUTION",
		},
		cli.StringFlag{
			Name:   "interp",
			Usage:  "interpolation for 1024 entry tables: off, linear or quadratic",
			Value:  oscillator.InterpOff.String(),
			EnvVar: "DDSGEN_INTERP",
		},
		cli.DurationFlag{
			Name:   "duration, d",
			Usage:  "length of the rendered tone",
			Value:  time.Second,
			EnvVar: "DDSGEN_DURATION",
		},
		cli.StringFlag{
			Name:   "table, t",
			Usage:  "audio file (wav, aiff, mp3, ogg) holding one cycle for the user waveform; other waveforms are rejected",
			EnvVar: "DDSGEN_TABLE",
		},
		cli.StringFlag{
			Name:   "output, o",
			Usage:  "path of the WAV file to write",
			Value:  "tone.wav",
			EnvVar: "DDSGEN_OUTPUT",
		},
		cli.BoolFlag{
			Name:   "verbose, v",
			Usage:  "log debug details to stderr",
			EnvVar: "DDSGEN_VERBOSE",
		},
	}
	app.Action = runGenerate

	return app
}

func runGenerate(c *cli.Context) error {
	logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))

	cfg := config{
		Wave:          c.String("wave"),
		Freq:          c.Float64("freq"),
		Note:          c.String("note"),
		Rate:          c.Int("rate"),
		OutRate:       c.Int("out-rate"),
		Amplitude:     c.Float64("amplitude"),
		Resolution:    c.String("resolution"),
		Interpolation: c.String("interp"),
		Duration:      c.Duration("duration"),
		Table:         c.String("table"),
		Output:        c.String("output"),
	}
	if cfg.Table != "" && !c.IsSet("wave") {
		cfg.Wave = oscillator.User.String()
	}

	return generate(cfg, newRegistry(), logger)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRegistry maps lower-case file extensions to wavetable decoders.
func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

func generate(cfg config, reg *audio.Registry, logger *slog.Logger) error {
	if cfg.Rate <= 0 || uint64(cfg.Rate) > math.MaxUint32 {
		return fmt.Errorf("--rate %d: %w", cfg.Rate, ddsgen.ErrInvalidRate)
	}
	if cfg.Duration <= 0 {
		return errInvalidDuration
	}

	outRate := cfg.OutRate
	if outRate == 0 {
		outRate = cfg.Rate
	}

	osc, err := buildOscillator(cfg, reg, logger)
	if err != nil {
		return err
	}

	n := int(math.Round(cfg.Duration.Seconds() * float64(cfg.Rate)))
	if n == 0 {
		n = 1
	}

	logger.Debug("Rendering tone",
		"waveform", osc.Waveform(),
		"resolution", osc.Resolution(),
		"interpolation", osc.Interpolation(),
		"increment", osc.PhaseIncrement(),
		"amplitude", osc.Amplitude(),
		"samples", n,
	)

	pcm, rate, err := ddsgen.RenderPCM16(osc, cfg.Rate, outRate, n, ddsgen.DefaultBufferSize)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, rate, pcm); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	logger.Info("Wrote tone", "path", cfg.Output, "rate", rate, "samples", len(pcm))

	return f.Close()
}

func buildOscillator(cfg config, reg *audio.Registry, logger *slog.Logger) (*oscillator.Oscillator, error) {
	wave, ok := oscillator.ParseWaveform(cfg.Wave)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownWaveform, cfg.Wave)
	}
	res, ok := oscillator.ParseResolution(cfg.Resolution)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownResolution, cfg.Resolution)
	}
	interp, ok := oscillator.ParseInterpolation(cfg.Interpolation)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownInterpolation, cfg.Interpolation)
	}
	if cfg.Table != "" && wave != oscillator.User {
		return nil, fmt.Errorf("%w: got --wave %s", errTableNeedsUserWave, wave)
	}

	osc := oscillator.New()
	osc.SetResolution(res)
	osc.SetInterpolation(interp)
	osc.SetWaveform(wave)
	osc.SetAmplitudePercent(cfg.Amplitude)

	if cfg.Note != "" {
		note, ok := oscillator.ParseNote(cfg.Note)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownNote, cfg.Note)
		}
		osc.SetNote(note, uint32(cfg.Rate))
		logger.Debug("Using note", "note", note, "hz", note.Hz())
	} else {
		osc.SetFrequency(cfg.Freq, uint32(cfg.Rate))
	}

	if cfg.Table != "" {
		table, err := loadTable(cfg.Table, reg)
		if err != nil {
			return nil, err
		}
		osc.SetUserWaveform(table.Sample)
		logger.Debug("Loaded wavetable", "path", cfg.Table, "harmonics", table.Harmonics(4))
	}

	return osc, nil
}

func loadTable(path string, reg *audio.Registry) (*wavetable.Custom, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", errUnsupportedTable, ext, strings.Join(reg.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wavetable: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	table, err := wavetable.FromSource(src)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}

	return table, nil
}
