package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/territory/internal/config"
	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/injector"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "territory:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	a, err := injector.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	logger := log.Provide()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stopCh)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case sig := <-stopCh:
			logger.Info("signal received, stopping", log.String("signal", sig.String()))
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	// The window backend must own the main goroutine, so the app runs here
	// and only the signal watcher lives in the group.
	runErr := a.Run(ctx)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}

// parseFlags loads the config file, if any, and applies command-line overrides
// for the flags that were set explicitly.
func parseFlags(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("territory", flag.ContinueOnError)
	var (
		path     = fs.String("config", "", "path to a YAML config file")
		backend  = fs.String("backend", "", "window, terminal or headless")
		speed    = fs.Float64("speed", 0, "agent speed in screen units per second")
		mode     = fs.String("capture", "", "capture mode: bbox or exact")
		frames   = fs.Int("frames", 0, "frames to simulate in headless mode")
		out      = fs.String("out", "", "snapshot directory in headless mode")
		logLevel = fs.String("log-level", "", "debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Render.Backend = *backend
		case "speed":
			cfg.Player.Speed = *speed
		case "capture":
			cfg.Capture.Mode = *mode
		case "frames":
			cfg.Headless.Frames = *frames
		case "out":
			cfg.Headless.OutputDir = *out
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
