/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logger provides levelled diagnostic logging for test suites.
//
// Loggers are plain values: a suite creates one per test with the test name
// as its context.
package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var ErrUnknownLevel = errors.New("unknown log level")

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}

	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// color is the ANSI foreground used for a level's lines.
func (l Level) color() termenv.Color {
	switch l {
	case LevelDebug:
		return termenv.ANSICyan
	case LevelInfo:
		return termenv.ANSIGreen
	case LevelWarn:
		return termenv.ANSIYellow
	case LevelError:
		return termenv.ANSIRed
	}

	return nil
}

// ParseLevel parses a level name, case insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	}

	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// TimestampFormat matches an ISO-8601 UTC timestamp with milliseconds.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Config controls what is logged and how.
type Config struct {
	// MinLevel suppresses anything less severe.
	MinLevel Level
	// ShowTimestamps prefixes each line with the time.
	ShowTimestamps bool
	// UseColors wraps each line in ANSI colour codes.
	UseColors bool
}

// DefaultConfig logs INFO and above, with timestamps and colour.
func DefaultConfig() Config {
	return Config{
		MinLevel:       LevelInfo,
		ShowTimestamps: true,
		UseColors:      true,
	}
}

type Logger struct {
	config      Config
	output      *termenv.Output
	testContext string
	now         func() time.Time

	// lock is shared by all loggers derived from the same root so lines
	// written to the same output are never interleaved.
	lock *sync.Mutex
}

// Option modifies a logger on creation.
type Option func(*Logger)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a logger writing to w, or stdout if w is nil.
func New(w io.Writer, config Config, options ...Option) *Logger {
	if w == nil {
		w = os.Stdout
	}

	// Colour is an explicit choice, not something inferred from the terminal.
	profile := termenv.Ascii
	if config.UseColors {
		profile = termenv.ANSI
	}

	l := &Logger{
		config: config,
		output: termenv.NewOutput(w, termenv.WithProfile(profile)),
		now:    time.Now,
		lock:   &sync.Mutex{},
	}

	for _, o := range options {
		o(l)
	}

	return l
}

// WithTestContext returns a logger that tags every line with name.
func (l *Logger) WithTestContext(name string) *Logger {
	c := *l
	c.testContext = name

	return &c
}

// TestContext returns the current test context, if any.
func (l *Logger) TestContext() string {
	return l.testContext
}

// Enabled tells whether a level would be logged.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.config.MinLevel
}

func (l *Logger) Debug(message string, data ...any) {
	l.log(LevelDebug, message, data...)
}

func (l *Logger) Info(message string, data ...any) {
	l.log(LevelInfo, message, data...)
}

func (l *Logger) Warn(message string, data ...any) {
	l.log(LevelWarn, message, data...)
}

func (l *Logger) Error(message string, data ...any) {
	l.log(LevelError, message, data...)
}

// Format renders a line without the level colour, this is what is
// written for the given level and message.
func (l *Logger) Format(level Level, message string) string {
	var builder strings.Builder

	if l.config.ShowTimestamps {
		builder.WriteString("[")
		builder.WriteString(l.now().UTC().Format(TimestampFormat))
		builder.WriteString("] ")
	}

	builder.WriteString(level.String())
	builder.WriteString(" ")

	if l.testContext != "" {
		builder.WriteString("[")
		builder.WriteString(l.testContext)
		builder.WriteString("] ")
	}

	builder.WriteString(message)

	return builder.String()
}

func (l *Logger) log(level Level, message string, data ...any) {
	if !l.Enabled(level) {
		return
	}

	var builder strings.Builder

	builder.WriteString(l.output.String(l.Format(level, message)).Foreground(level.color()).String())
	builder.WriteString("\n")

	for _, d := range data {
		builder.WriteString(renderData(d))
		builder.WriteString("\n")
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	_, _ = io.WriteString(l.output, builder.String())
}

// renderData formats additional log data: errors verbosely, so any stack
// is included, composite values as indented JSON, and scalars as is.
func renderData(data any) string {
	if data == nil {
		return "<nil>"
	}

	if err, ok := data.(error); ok {
		return fmt.Sprintf("%+v", err)
	}

	//nolint:exhaustive
	switch reflect.Indirect(reflect.ValueOf(data)).Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		out, err := json.MarshalIndent(data, "", "  ")
		if err == nil {
			return string(out)
		}
	}

	return fmt.Sprint(data)
}
