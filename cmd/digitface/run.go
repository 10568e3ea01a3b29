package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/tinytelemetry/digitface/internal/glyph"
	"github.com/tinytelemetry/digitface/internal/httpserver"
	"github.com/tinytelemetry/digitface/internal/socketrpc"
	"github.com/tinytelemetry/digitface/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// runWatch runs the face until the user quits or the process is signalled.
func runWatch(cfg appConfig, demo bool) error {
	cleanupLogger := configureRuntimeLogger(cfg.LogFile)
	defer cleanupLogger()

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		log.Printf("digitface: skin %q: %v (using default)", cfg.Skin, err)
	}

	font, err := glyph.Resolve(cfg.Font)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	var clock tui.Clock = tui.SystemClock{}
	if demo {
		clock = tui.NewWarpClock(cfg.demoStartTime(time.Now()), cfg.DemoSpeed)
		log.Printf("digitface: demo mode at %.0fx", cfg.DemoSpeed)
	}

	watch := tui.NewWatchModel(tui.Options{
		Font:           font,
		Clock:          clock,
		TwelveHour:     cfg.TwelveHour(),
		IdleTimeout:    cfg.IdleTimeout,
		AnimDuration:   cfg.AnimDuration,
		AnimDelay:      cfg.AnimDelay,
		FrameInterval:  cfg.FrameInterval,
		InvertDiagonal: cfg.InvertDiagonal,
		AutoResync:     cfg.AutoResync,
	})

	p := tea.NewProgram(watch, tea.WithAltScreen(), tea.WithMouseCellMotion())
	remote := tui.NewRemote(p.Send, watch.Snapshots())

	// Control surfaces are optional; the face runs without them.
	sockServer := socketrpc.NewServer(cfg.SocketPath, remote)
	if err := sockServer.Start(); err != nil {
		log.Printf("digitface: control socket disabled: %v", err)
	} else {
		defer sockServer.Stop()
	}

	if cfg.APIEnabled {
		apiServer := httpserver.NewServer(cfg.APIAddr, remote)
		if err := apiServer.Start(); err != nil {
			return fmt.Errorf("failed to start API server: %w", err)
		}
		defer apiServer.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		if _, err := p.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("the watch face requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	// Signals end the program the same way the quit key does.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			log.Printf("digitface: shutting down")
			p.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}

// configureRuntimeLogger sends the standard logger to path so log lines never
// land on the alternate screen.
func configureRuntimeLogger(path string) func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	f, err := tea.LogToFile(path, "")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() {
		_ = f.Close()
	}
}
