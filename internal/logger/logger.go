// Package logger is passforge's zerolog front end. Entries go to stderr so
// stdout only ever carries generated passwords.
package logger

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

// Levels are the names accepted for log_level and PASSFORGE_LOG_LEVEL.
var Levels = []string{"debug", "info", "warn", "error"}

// ValidLevel reports whether name is one of Levels, ignoring case.
func ValidLevel(name string) bool {
	return slices.Contains(Levels, strings.ToLower(name))
}

// ParseLevel maps a level name to zerolog. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	if !ValidLevel(name) {
		return zerolog.NoLevel, pferrors.NewValidationError("log_level",
			fmt.Sprintf("must be one of [%s], got %q", strings.Join(Levels, " "), name), nil)
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

// Options configures New.
type Options struct {
	Level string
	// Verbose forces debug regardless of Level.
	Verbose       bool
	HumanReadable bool
	// Component, when set, is attached to every entry.
	Component string
	Writer    io.Writer
}

// Logger is a nil-safe wrapper around zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{zl: ctx.Logger()}, nil
}

// Nop discards everything. The widget uses it while the alternate screen
// owns the terminal.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithFields returns a child logger carrying fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

// WithField is WithFields for one key.
func (l *Logger) WithField(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.emit(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.emit(zerolog.WarnLevel, nil, msg) }

// Error logs msg with err attached when non-nil.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.zl.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
