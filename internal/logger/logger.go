// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the sommelier server and client.
//
// Every entry carries the process role, a timestamp and the calling function.
// Request and component scoped loggers are derived with [Logger.ForComponent],
// [FromRequest] and [FromContext].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable holding the minimum level,
// e.g. "info". Unset or unknown values mean debug.
const LevelEnv = "LOG_LEVEL"

const clientLogFile = "sommelier-client.log"

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, levelFromEnv())
}

// NewClientLogger returns a logger for the terminal client. Stdout belongs to
// the UI, so entries are appended to sommelier-client.log in the user cache
// directory, or next to the executable when there is no cache directory.
// When neither file can be opened the entries are discarded.
func NewClientLogger(role string) *Logger {
	var out io.Writer = io.Discard
	for _, dir := range clientLogDirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			continue
		}
		f, err := os.OpenFile(filepath.Join(dir, clientLogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			out = f
			break
		}
	}

	return newLogger(out, role, levelFromEnv())
}

func clientLogDirs() []string {
	var dirs []string
	if cache, err := os.UserCacheDir(); err == nil {
		dirs = append(dirs, filepath.Join(cache, "sommelier"))
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

func levelFromEnv() zerolog.Level {
	return parseLevel(os.Getenv(LevelEnv))
}

func parseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return level
}

func newLogger(out io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForComponent tags entries with a "component" field, e.g. the name of a
// screen reducer or a service.
func (l *Logger) ForComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromRequest returns the request scoped logger put into the context by the
// logging middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext,
// or zerolog's default logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
