// SPDX-License-Identifier: EPL-2.0

// Command wavelod shows an audio file as a zoomable waveform in the
// terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/ik5/wavelod/decimate"
	"github.com/ik5/wavelod/engine"
	"github.com/ik5/wavelod/internal/logger"
	"github.com/ik5/wavelod/internal/tui"
	"github.com/ik5/wavelod/loader"
)

var errUsage = errors.New("usage")

type config struct {
	path      string
	maxPoints int
	rate      int
	trueTime  bool
	logLevel  string
	logFile   string
	profile   string
	headless  bool
	export    string
	out       string

	exportFrom float64
	exportTo   float64
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("wavelod", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wavelod [flags] <audio file>")
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.maxPoints, "max-points", engine.DefaultMaxPoints, "most points drawn for any viewport")
	fs.IntVar(&cfg.rate, "rate", 0, "resample to this rate on load, 0 keeps the file's rate")
	fs.BoolVar(&cfg.trueTime, "true-time", false, "place points at their real timestamps")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&cfg.logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&cfg.profile, "profile", "", "cpu or mem")
	fs.BoolVar(&cfg.headless, "headless", false, "print a summary instead of starting the viewer")
	fs.StringVar(&cfg.export, "export", "", "write the raw samples of FROM:TO seconds as WAV")
	fs.StringVar(&cfg.out, "out", "clip.wav", "output file for -export")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, fmt.Errorf("%w: expected one audio file, got %d arguments", errUsage, fs.NArg())
	}
	cfg.path = fs.Arg(0)

	if cfg.maxPoints < 1 {
		return cfg, fmt.Errorf("%w: -max-points must be positive", errUsage)
	}
	if cfg.rate < 0 {
		return cfg, fmt.Errorf("%w: -rate must not be negative", errUsage)
	}

	switch cfg.profile {
	case "", "cpu", "mem":
	default:
		return cfg, fmt.Errorf("%w: unknown -profile %q", errUsage, cfg.profile)
	}

	if cfg.export != "" {
		from, to, err := parseRange(cfg.export)
		if err != nil {
			return cfg, err
		}
		cfg.exportFrom, cfg.exportTo = from, to
	}

	return cfg, nil
}

// parseRange reads "FROM:TO" in seconds.
func parseRange(s string) (from, to float64, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: range %q is not FROM:TO", errUsage, s)
	}

	from, err = strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: range start: %w", errUsage, err)
	}
	to, err = strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: range end: %w", errUsage, err)
	}
	if to <= from {
		return 0, 0, fmt.Errorf("%w: range %q is empty", errUsage, s)
	}

	return from, to, nil
}

func newLogger(cfg config) (*zap.Logger, error) {
	switch {
	case cfg.logFile != "":
		return logger.New(logger.WithLevel(cfg.logLevel), logger.WithOutputPaths(cfg.logFile))
	case cfg.headless || cfg.export != "":
		return logger.New(logger.WithLevel(cfg.logLevel), logger.WithDevelopment(true))
	default:
		// The terminal belongs to the viewer.
		return zap.NewNop(), nil
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch cfg.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "wavelod:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	axis := decimate.AxisViewport
	if cfg.trueTime {
		axis = decimate.AxisSample
	}

	plot := tui.NewPlot(tui.DefaultStyles())
	eng := engine.New(
		engine.WithDecoder(loader.NewFileDecoder(
			loader.WithTargetRate(cfg.rate),
			loader.WithLogger(log),
		)),
		engine.WithRenderer(plot),
		engine.WithLogger(log),
		engine.WithMaxPoints(cfg.maxPoints),
		engine.WithTimeAxis(axis),
	)

	if err := eng.OnLoad(ctx, cfg.path); err != nil {
		return err
	}

	meta := loader.ReadMetadata(cfg.path)

	switch {
	case cfg.export != "":
		return exportClip(eng, cfg, stdout)
	case cfg.headless:
		return summarize(eng, meta, stdout)
	}

	return view(ctx, eng, plot, meta, log)
}

func exportClip(eng *engine.Engine, cfg config, stdout io.Writer) error {
	f, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.out, err)
	}

	if err := eng.ExportRange(f, cfg.exportFrom, cfg.exportTo); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", cfg.out, err)
	}

	fmt.Fprintf(stdout, "wrote %s (%g-%gs)\n", cfg.out, cfg.exportFrom, cfg.exportTo)

	return nil
}

func summarize(eng *engine.Engine, meta loader.Metadata, stdout io.Writer) error {
	tMin, tMax := eng.Viewport()

	_, err := fmt.Fprintf(stdout,
		"title: %s\nduration: %.3fs\nsample rate: %d Hz\nviewport: %.3f-%.3fs\npoints: %d\nstride: %d\n",
		meta, eng.Duration(), eng.SampleRate(), tMin, tMax, eng.CurrentDisplay().Len(), eng.Stride())

	return err
}

func view(ctx context.Context, eng *engine.Engine, plot *tui.Plot, meta loader.Metadata, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dispatcher := engine.NewDispatcher(eng)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = dispatcher.Run(ctx)
	}()

	model := tui.NewModel(eng, dispatcher, plot, meta.String(), tui.DefaultStyles())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	plot.SetNotify(tui.Notify(program))

	_, err := program.Run()

	cancel()
	<-done

	published, dropped := dispatcher.Stats()
	log.Debug("viewer closed", zap.Uint64("published", published), zap.Uint64("dropped", dropped))

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running viewer: %w", err)
	}

	return nil
}
