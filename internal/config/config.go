// Package config loads and watches the framekey configuration file.
//
// Configuration is TOML with a small, flat schema. Values resolve in
// three layers: built-in defaults, then the file, then FRAMEKEY_*
// environment variables. A missing file is not an error; the defaults
// stand alone.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the resolved framekey configuration.
type Config struct {
	App    App    `toml:"app"`
	Source Source `toml:"source"`
	Log    Log    `toml:"log"`
	Replay Replay `toml:"replay"`
	Layout Layout `toml:"layout"`
}

// App configures the frame loop.
type App struct {
	// FrameRate is the frames-per-second of the update loop.
	FrameRate int `toml:"frame_rate"`

	// QuitTaps is how many Escape presses in quick succession quit
	// the inspector.
	QuitTaps int `toml:"quit_taps"`
}

// Source configures the terminal event source.
type Source struct {
	// ReleaseTTLMS is how long a key stays held after its last
	// report before a synthetic release is emitted. Terminals do not
	// report key releases, so holds are inferred from repeats.
	ReleaseTTLMS int `toml:"release_ttl_ms"`

	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse"`
}

// ReleaseTTL returns the synthetic release window as a duration.
func (s Source) ReleaseTTL() time.Duration {
	return time.Duration(s.ReleaseTTLMS) * time.Millisecond
}

// Log configures logging output.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Replay configures tape recording.
type Replay struct {
	// Dir is where new tapes are written when recording without an
	// explicit path.
	Dir string `toml:"dir"`
}

// Layout configures the inspector's keyboard grid.
type Layout struct {
	// File overrides the built-in layout. Empty uses the embedded
	// ANSI layout.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		App:    App{FrameRate: 60, QuitTaps: 3},
		Source: Source{ReleaseTTLMS: 600, Mouse: true},
		Log:    Log{Level: "info", File: "framekey.log"},
		Replay: Replay{Dir: "."},
	}
}

// Load resolves the configuration: defaults, then the file at path,
// then environment overrides. A missing file leaves the defaults in
// place. A malformed file returns a *ParseError.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, parseError(path, err)
		}
	case os.IsNotExist(err):
		// Defaults stand alone.
	default:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays FRAMEKEY_* environment variables. Numeric
// variables that do not parse are ignored; Validate still bounds the
// final values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("FRAMEKEY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FRAMEKEY_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("FRAMEKEY_FRAME_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.App.FrameRate = n
		}
	}
	if v := os.Getenv("FRAMEKEY_RELEASE_TTL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.ReleaseTTLMS = n
		}
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.App.FrameRate < 1 || c.App.FrameRate > 240 {
		return fmt.Errorf("app.frame_rate %d out of range 1..240", c.App.FrameRate)
	}
	if c.App.QuitTaps < 1 || c.App.QuitTaps > 10 {
		return fmt.Errorf("app.quit_taps %d out of range 1..10", c.App.QuitTaps)
	}
	if c.Source.ReleaseTTLMS < 50 || c.Source.ReleaseTTLMS > 5000 {
		return fmt.Errorf("source.release_ttl_ms %d out of range 50..5000", c.Source.ReleaseTTLMS)
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(path string, err error) *ParseError {
	pe := &ParseError{
		Path:    path,
		Message: err.Error(),
		Err:     err,
	}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	return pe
}
