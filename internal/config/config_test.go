package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.App.FrameRate != 60 {
		t.Errorf("App.FrameRate = %d, want 60", cfg.App.FrameRate)
	}
	if cfg.App.QuitTaps != 3 {
		t.Errorf("App.QuitTaps = %d, want 3", cfg.App.QuitTaps)
	}
	if cfg.Source.ReleaseTTLMS != 600 {
		t.Errorf("Source.ReleaseTTLMS = %d, want 600", cfg.Source.ReleaseTTLMS)
	}
	if !cfg.Source.Mouse {
		t.Error("Source.Mouse = false, want true")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framekey.toml")
	data := `
[app]
frame_rate = 30

[source]
release_ttl_ms = 900
mouse = false

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.FrameRate != 30 {
		t.Errorf("App.FrameRate = %d, want 30", cfg.App.FrameRate)
	}
	if cfg.Source.ReleaseTTLMS != 900 {
		t.Errorf("Source.ReleaseTTLMS = %d, want 900", cfg.Source.ReleaseTTLMS)
	}
	if cfg.Source.Mouse {
		t.Error("Source.Mouse = true, want false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	// Untouched sections keep their defaults.
	if cfg.App.QuitTaps != 3 {
		t.Errorf("App.QuitTaps = %d, want 3", cfg.App.QuitTaps)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framekey.toml")
	if err := os.WriteFile(path, []byte("[app\nframe_rate = 30"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error type = %T, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError.Unwrap() = nil, want wrapped error")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framekey.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FRAMEKEY_LOG_LEVEL", "debug")
	t.Setenv("FRAMEKEY_FRAME_RATE", "120")
	t.Setenv("FRAMEKEY_RELEASE_TTL_MS", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want env override %q", cfg.Log.Level, "debug")
	}
	if cfg.App.FrameRate != 120 {
		t.Errorf("App.FrameRate = %d, want env override 120", cfg.App.FrameRate)
	}
	if cfg.Source.ReleaseTTLMS != 600 {
		t.Errorf("Source.ReleaseTTLMS = %d, want default 600 after bad env value", cfg.Source.ReleaseTTLMS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"frame rate floor", func(c *Config) { c.App.FrameRate = 1 }, false},
		{"frame rate zero", func(c *Config) { c.App.FrameRate = 0 }, true},
		{"frame rate too high", func(c *Config) { c.App.FrameRate = 500 }, true},
		{"quit taps zero", func(c *Config) { c.App.QuitTaps = 0 }, true},
		{"ttl too low", func(c *Config) { c.Source.ReleaseTTLMS = 10 }, true},
		{"ttl too high", func(c *Config) { c.Source.ReleaseTTLMS = 10000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReleaseTTL(t *testing.T) {
	s := Source{ReleaseTTLMS: 250}
	if got := s.ReleaseTTL(); got != 250*time.Millisecond {
		t.Errorf("ReleaseTTL() = %v, want 250ms", got)
	}
}
