// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the jobwise binaries.
//
// The server logs JSON to stdout. The terminal client logs to a file so the
// UI is never overwritten. Request handlers get their logger from the
// context, where middleware has already tagged it with the trace id and,
// after authentication, the user id.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Field names shared by every component that tags request logs.
const (
	TraceIDField = "trace_id"
	UserIDField  = "user_id"
	RoleField    = "role"
	CallerField  = "func"
)

var setupGlobals sync.Once

// Logger embeds zerolog.Logger, so the usual Info/Warn/Err chain works on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a debug-level JSON logger on stdout, tagged with role.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewFileLogger appends to the file at path instead of stdout. The caller
// closes the returned closer on exit.
func NewFileLogger(role, path string) (*Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return newLogger(f, role), f, nil
}

func newLogger(w io.Writer, role string) *Logger {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = CallerField
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})

	zl := zerolog.New(w).With().
		Str(RoleField, role).
		Timestamp().
		Caller().
		Logger()
	return &Logger{zl}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID stores in ctx a child of l tagged with traceID.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	return l.With().Str(TraceIDField, traceID).Logger().WithContext(ctx)
}

// WithUserID tags the logger already stored in ctx with userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return FromContext(ctx).With().Int64(UserIDField, userID).Logger().WithContext(ctx)
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Without one it returns a
// disabled logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
