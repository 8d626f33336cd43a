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

package logger

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// Logr adapts the logger for code that logs via logr, typically found with
// log.FromContext.  V(0) is INFO, anything more verbose is DEBUG.
func (l *Logger) Logr() logr.Logger {
	return logr.New(&sink{logger: l})
}

type sink struct {
	logger *Logger
	name   string
	values []any
}

var _ logr.LogSink = &sink{}

func (s *sink) Init(logr.RuntimeInfo) {}

func (s *sink) level(level int) Level {
	if level > 0 {
		return LevelDebug
	}

	return LevelInfo
}

func (s *sink) Enabled(level int) bool {
	return s.logger.Enabled(s.level(level))
}

func (s *sink) Info(level int, msg string, keysAndValues ...any) {
	s.logger.log(s.level(level), s.message(msg, keysAndValues))
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	if err == nil {
		s.logger.log(LevelError, s.message(msg, keysAndValues))
		return
	}

	s.logger.log(LevelError, s.message(msg, keysAndValues), err)
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	c := *s
	c.values = append(append([]any{}, s.values...), keysAndValues...)

	return &c
}

func (s *sink) WithName(name string) logr.LogSink {
	c := *s

	if c.name == "" {
		c.name = name
	} else {
		c.name += "/" + name
	}

	return &c
}

// message renders the name, message and key/value pairs on one line.
func (s *sink) message(msg string, keysAndValues []any) string {
	var builder strings.Builder

	if s.name != "" {
		builder.WriteString(s.name)
		builder.WriteString(": ")
	}

	builder.WriteString(msg)

	pairs := append(append([]any{}, s.values...), keysAndValues...)

	for i := 0; i < len(pairs); i += 2 {
		var value any = "<missing>"
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}

		fmt.Fprintf(&builder, " %v=%v", pairs[i], value)
	}

	return builder.String()
}
