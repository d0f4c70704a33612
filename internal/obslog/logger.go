// Package obslog wraps zerolog with the field-pair call style the
// reporting package of the retrieved chaos-runner tooling uses: Info/Warn/
// Error methods taking alternating key/value pairs instead of a builder
// chain, so call sites stay one line even with several fields attached.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level selects a logger's minimum severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Output io.Writer
}

// Logger is a structured, leveled logger over zerolog.
type Logger struct {
	z zerolog.Logger
}

// New returns a Logger with a timestamp field and the configured level.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	z := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		z = z.Level(zerolog.DebugLevel)
	case LevelWarn:
		z = z.Level(zerolog.WarnLevel)
	case LevelError:
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}

	return &Logger{z: z}
}

// Nop returns a Logger that discards everything, for tests and for
// ComputeHazard callers that don't want logging.
func Nop() *Logger {
	return &Logger{z: zerolog.New(io.Discard)}
}

func (l *Logger) event(e *zerolog.Event, msg string, fields ...interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, fields[i+1])
	}
	e.Msg(msg)
}

// Debug logs msg at debug level with alternating key/value fields.
func (l *Logger) Debug(msg string, fields ...interface{}) { l.event(l.z.Debug(), msg, fields...) }

// Info logs msg at info level with alternating key/value fields.
func (l *Logger) Info(msg string, fields ...interface{}) { l.event(l.z.Info(), msg, fields...) }

// Warn logs msg at warn level with alternating key/value fields.
func (l *Logger) Warn(msg string, fields ...interface{}) { l.event(l.z.Warn(), msg, fields...) }

// Error logs msg at error level with alternating key/value fields.
func (l *Logger) Error(msg string, fields ...interface{}) { l.event(l.z.Error(), msg, fields...) }

// With returns a child Logger with key=value attached to every event.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{z: l.z.With().Interface(key, value).Logger()}
}

// Elapsed is a convenience for logging a duration field computed from a
// start time, matching the "computed at the call site, logged by value"
// style used throughout the calc package's instrumentation hooks.
func Elapsed(start time.Time) time.Duration { return time.Since(start) }
