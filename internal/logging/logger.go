package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a single structured log field, built by the constructors below.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued Field.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int builds an int-valued Field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Uint64 builds a uint64-valued Field.
func Uint64(key string, val uint64) Field { return Field{Key: key, Value: val} }

// Float64 builds a float64-valued Field.
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

// Err builds an "error"-keyed Field from err. Err(nil) produces a Field with
// a nil Value.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the structured, leveled logging interface used throughout the
// application. Sizing-violation warnings from internal/radix's Parse and
// ToBasePos are logged at Warn rather than returned as errors: a
// "logged, not raised" contract for non-fatal precision loss.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// zerologAdapter implements Logger over a zerolog.Logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger as a Logger.
func NewZerologAdapter(zl zerolog.Logger) Logger {
	return &zerologAdapter{logger: zl}
}

// NewDefaultLogger returns a Logger writing to stderr with a timestamp.
func NewDefaultLogger() Logger {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return NewZerologAdapter(zl)
}

// NewLogger returns a Logger writing to w, tagging every entry with the
// given component name.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

func applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

func (a *zerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.logger.Warn(), fields).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, err error, fields ...Field) {
	ev := a.logger.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	applyFields(ev, fields).Msg(msg)
}

func (a *zerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

func (a *zerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

func (a *zerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(strings.TrimRight(fmt.Sprintln(args...), "\n"))
}

// stdLoggerAdapter implements Logger over the standard library's log.Logger,
// for environments that want no dependency on zerolog.
type stdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps a standard log.Logger as a Logger.
func NewStdLoggerAdapter(l *log.Logger) Logger {
	return &stdLoggerAdapter{logger: l}
}

func formatStd(level, msg string, fields []Field) string {
	var sb strings.Builder
	sb.WriteString("[" + level + "] " + msg)
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	return sb.String()
}

func (a *stdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Print(formatStd("INFO", msg, fields))
}

func (a *stdLoggerAdapter) Warn(msg string, fields ...Field) {
	a.logger.Print(formatStd("WARN", msg, fields))
}

func (a *stdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	line := "[ERROR] " + msg
	if err != nil {
		line += fmt.Sprintf(" error=%v", err)
	}
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	a.logger.Print(line)
}

func (a *stdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Print(formatStd("DEBUG", msg, fields))
}

func (a *stdLoggerAdapter) Printf(format string, args ...any) {
	a.logger.Printf(format, args...)
}

func (a *stdLoggerAdapter) Println(args ...any) {
	a.logger.Println(args...)
}
