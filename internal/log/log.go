// Package log provides leveled, named logging for framekey components.
//
// The inspector owns the terminal while it runs, so the default sink is
// a file rather than stderr. Level changes take effect at runtime,
// which lets the configuration watcher adjust verbosity without a
// restart. The core input packages never log; event discard and state
// transitions are not diagnostics.
package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface handed to components.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Named(name string) Logger
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

// Options configures the root logger.
type Options struct {
	// Level is the minimum level to emit: debug, info, warn, or error.
	Level string

	// File is the sink path. Empty means stderr.
	File string
}

// Root is the process-wide logger. It owns the sink file, if any, and
// can change its level at runtime.
type Root struct {
	logger
	level zap.AtomicLevel
	file  *os.File
}

// Setup builds the root logger. The caller closes it at shutdown.
func Setup(opts Options) (*Root, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var (
		sink zapcore.WriteSyncer = zapcore.AddSync(os.Stderr)
		file *os.File
	)
	if opts.File != "" {
		file, err = os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(file)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.ConsoleSeparator = " "

	atomic := zap.NewAtomicLevelAt(lvl)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, atomic)

	return &Root{
		logger: logger{zap.New(core).Sugar()},
		level:  atomic,
		file:   file,
	}, nil
}

// SetLevel changes the minimum emitted level at runtime.
func (r *Root) SetLevel(name string) error {
	lvl, err := parseLevel(name)
	if err != nil {
		return err
	}
	r.level.SetLevel(lvl)
	return nil
}

// Close flushes buffered entries and closes the sink file, if any.
func (r *Root) Close() error {
	// Sync on a closed stderr reports an error on some platforms;
	// the file sink is the one that needs flushing.
	_ = r.Sync()
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &logger{zap.NewNop().Sugar()}
}

func parseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}
