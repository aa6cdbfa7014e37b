// Package app wires the tracker pipeline together and runs the
// frame loop: configuration, logging, an event source, one state
// tracker per device and the terminal view.
package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/dshills/framekey/internal/config"
	"github.com/dshills/framekey/internal/input"
	"github.com/dshills/framekey/internal/input/gamepad"
	"github.com/dshills/framekey/internal/input/key"
	"github.com/dshills/framekey/internal/input/keyboard"
	"github.com/dshills/framekey/internal/input/mouse"
	"github.com/dshills/framekey/internal/layout"
	"github.com/dshills/framekey/internal/log"
	"github.com/dshills/framekey/internal/replay"
	"github.com/dshills/framekey/internal/source"
)

// Application owns every component of a tracker session.
type Application struct {
	cfg    config.Config
	logger *log.Root
	lay    layout.Layout

	// Event delivery
	src  source.Source
	term *source.Terminal // non-nil when reading the live terminal

	// Per-device trackers
	keys    *input.State[key.Code]
	buttons *input.State[mouse.Button]
	pads    *input.State[gamepad.Button]

	view    *view
	metrics *Metrics
	watcher *config.Watcher
	quit    *quitDetector

	frame   int
	rate    int
	running atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Record writes the session to a tape at this path. A bare file
	// name lands in the configured tape directory.
	Record string

	// Replay plays a tape instead of reading the terminal.
	Replay string

	// Script drives frames from a Lua file instead of the terminal.
	Script string

	// LogLevel overrides the configured logging verbosity.
	LogLevel string

	// Headless suppresses the terminal view for live sessions.
	Headless bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	a := &Application{opts: opts}
	if err := a.bootstrap(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// bootstrap initializes all components in dependency order.
func (a *Application) bootstrap() error {
	// 1. Configuration
	cfg, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	a.cfg = cfg
	a.rate = cfg.App.FrameRate

	// 2. Logging
	level := cfg.Log.Level
	if a.opts.LogLevel != "" {
		level = a.opts.LogLevel
	}
	a.logger, err = log.Setup(log.Options{Level: level, File: cfg.Log.File})
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	// 3. Layout
	a.lay = layout.Default()
	if cfg.Layout.File != "" {
		if a.lay, err = layout.Load(cfg.Layout.File); err != nil {
			return &InitError{Component: "layout", Err: err}
		}
	}

	// 4. Event source
	if err := a.openSource(); err != nil {
		return err
	}

	// 5. Trackers
	a.keys = input.NewState[key.Code]()
	a.buttons = input.NewState[mouse.Button]()
	a.pads = input.NewState[gamepad.Button]()

	// 6. Metrics
	a.metrics = NewMetrics()

	// 7. Live-session extras: quit taps, view, config watching
	if a.term != nil {
		a.quit = newQuitDetector(cfg.App.QuitTaps, time.Second)
		if !a.opts.Headless {
			a.view = newView(a.term.Screen(), a.lay)
		}
		if a.opts.ConfigPath != "" {
			w, err := config.Watch(a.opts.ConfigPath, a.logger.Named("config"))
			if err != nil {
				a.logger.Warnf("config watch unavailable: %v", err)
			} else {
				a.watcher = w
			}
		}
	}

	return nil
}

// openSource picks the event source and wraps it in a recorder when
// asked to.
func (a *Application) openSource() error {
	switch {
	case a.opts.Replay != "" && a.opts.Script != "":
		return &InitError{Component: "source", Err: errors.New("replay and script are mutually exclusive")}

	case a.opts.Replay != "":
		p, err := replay.Load(a.opts.Replay)
		if err != nil {
			return &InitError{Component: "replay", Err: err}
		}
		a.src = p
		if p.Rate() > 0 {
			a.rate = p.Rate()
		}
		a.logger.Infow("tape loaded", "tape", p.ID(), "frames", p.Frames(), "rate", p.Rate())

	case a.opts.Script != "":
		s, err := source.NewScript(a.opts.Script, a.logger.Named("script"))
		if err != nil {
			return &InitError{Component: "script", Err: err}
		}
		a.src = s

	default:
		term, err := source.NewTerminal(a.logger.Named("terminal"),
			source.WithReleaseTTL(a.cfg.Source.ReleaseTTL()),
			source.WithMouse(a.cfg.Source.Mouse))
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		a.term = term
		a.src = term
	}

	if a.opts.Record != "" {
		path := a.opts.Record
		if !filepath.IsAbs(path) && filepath.Dir(path) == "." {
			path = filepath.Join(a.cfg.Replay.Dir, path)
		}
		rec, err := replay.NewRecorder(a.src, path, a.rate)
		if err != nil {
			return &InitError{Component: "recorder", Err: err}
		}
		a.src = rec
		a.logger.Infow("recording", "tape", rec.ID(), "path", path)
	}

	return nil
}

// Run drives the frame loop until the source is exhausted, quit is
// requested or the context is canceled.
func (a *Application) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	a.logger.Infow("session started", "source", a.sourceName(), "rate", a.rate)

	var err error
	if a.term != nil {
		err = a.runLive(ctx)
	} else {
		err = a.runDeterministic(ctx)
	}
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	a.logSummary()
	return err
}

// runLive paces frames with a ticker so held keys, fades and the
// status line track wall time.
func (a *Application) runLive(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.rate))
	defer ticker.Stop()

	updates := a.updates()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			a.applyConfig(cfg, ticker)
		case <-ticker.C:
			done, err := a.step()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// runDeterministic folds frames as fast as the source produces
// them. Replay and script sources are exhausted, not quit.
func (a *Application) runDeterministic(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		done, err := a.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step folds one frame into the trackers.
func (a *Application) step() (bool, error) {
	batch, ok := a.src.Next()
	if !ok {
		return true, a.sourceErr()
	}
	a.frame++

	start := time.Now()
	keyboard.ApplyFrame(a.keys, batch.Keys)
	mouse.ApplyFrame(a.buttons, batch.Mouse)
	gamepad.ApplyFrame(a.pads, batch.Pads)
	elapsed := time.Since(start)

	unresolved := 0
	for _, ev := range batch.Keys {
		if ev.Code == key.CodeNone {
			unresolved++
		}
	}
	a.metrics.RecordFrame(elapsed, len(batch.Keys), len(batch.Mouse), len(batch.Pads), unresolved)
	if a.term != nil {
		a.metrics.SetDropped(a.term.Dropped())
	}

	if a.quit != nil && a.quit.observe(a.keys.JustPressed(key.CodeEscape)) {
		a.logger.Infow("quit taps detected", "taps", a.quit.taps)
		return true, ErrQuit
	}

	if a.view != nil {
		a.view.render(a.frame, a.keys, a.buttons, a.pads, a.metrics.Snapshot())
	}
	return false, nil
}

// updates returns the reload channel, or nil when no watcher is
// running. A nil channel never delivers, so the select just skips it.
func (a *Application) updates() <-chan config.Config {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Updates()
}

// applyConfig picks up a reloaded configuration mid-session.
func (a *Application) applyConfig(cfg config.Config, ticker *time.Ticker) {
	if cfg.App.FrameRate != a.rate {
		a.rate = cfg.App.FrameRate
		ticker.Reset(time.Second / time.Duration(a.rate))
	}
	if a.opts.LogLevel == "" && cfg.Log.Level != a.cfg.Log.Level {
		if err := a.logger.SetLevel(cfg.Log.Level); err != nil {
			a.logger.Warnf("config reload: %v", err)
		}
	}
	if a.quit != nil {
		a.quit.taps = cfg.App.QuitTaps
	}
	a.cfg = cfg
	a.logger.Infow("configuration reloaded", "rate", a.rate, "level", cfg.Log.Level)
}

func (a *Application) logSummary() {
	snap := a.metrics.Snapshot()
	a.logger.Infow("session finished",
		"frames", snap.FramesTotal,
		"keyEvents", snap.KeyEventsTotal,
		"mouseEvents", snap.MouseEventsTotal,
		"padEvents", snap.PadEventsTotal,
		"unresolved", snap.UnresolvedTotal,
		"dropped", snap.DroppedEvents,
		"avgFrameLatency", snap.AvgFrameLatency,
		"peakFrameLatency", snap.PeakFrameLatency,
	)
	if health := a.metrics.HealthCheck(10 * time.Millisecond); !health.Healthy {
		a.logger.Warnw("session health", "message", health.Message,
			"dropped", health.DroppedEvents, "peakLatency", health.PeakLatency)
	}
}

// sourceErr surfaces a failure that ended the source, if it exposes
// one.
func (a *Application) sourceErr() error {
	if es, ok := a.src.(interface{ Err() error }); ok {
		return es.Err()
	}
	return nil
}

func (a *Application) sourceName() string {
	switch {
	case a.opts.Replay != "":
		return "replay"
	case a.opts.Script != "":
		return "script"
	default:
		return "terminal"
	}
}

// Close releases every component. Safe after a failed New.
func (a *Application) Close() error {
	var first error
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil && first == nil {
			first = err
		}
	}
	if a.src != nil {
		if err := a.src.Close(); err != nil && first == nil {
			first = err
		}
	}
	if a.logger != nil {
		if err := a.logger.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// IsRunning reports whether the frame loop is active.
func (a *Application) IsRunning() bool {
	return a.running.Load()
}

// Frames returns how many frames have been folded.
func (a *Application) Frames() int {
	return a.frame
}

// Config returns the resolved configuration.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Metrics returns the session metrics.
func (a *Application) Metrics() *Metrics {
	return a.metrics
}

// Keys returns the keyboard tracker.
func (a *Application) Keys() *input.State[key.Code] {
	return a.keys
}

// MouseButtons returns the mouse tracker.
func (a *Application) MouseButtons() *input.State[mouse.Button] {
	return a.buttons
}

// PadButtons returns the gamepad tracker.
func (a *Application) PadButtons() *input.State[gamepad.Button] {
	return a.pads
}
