/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ellipsoid

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the records emitted by an Ellipsoid.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, a text handler writing to stderr is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogSample logs the outcome of a sampling call.
func (l *Logger) LogSample(requested int, mode ScaleMode, err error) {
	if err != nil {
		l.Error("sampling failed",
			"points", requested,
			"mode", mode.String(),
			"error", err,
		)
		return
	}
	l.Debug("sampling completed",
		"points", requested,
		"mode", mode.String(),
	)
}
