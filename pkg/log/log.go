// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/llmigrate/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	statusWidth = 10 // Width for status text
)

// 🎯 Logger prints human progress lines to a console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(io.Discard, zerolog.Nop())
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a Nop logger if there is none
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return Nop()
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatResult formats a file result for display
func (l *Logger) formatResult(r status.FileResult) string {
	var symbol rune
	var symbolColor color.Attribute
	switch r.Status {
	case status.StatusMigrated:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case status.StatusUnchanged:
		symbol = '•'
		symbolColor = color.FgCyan
	case status.StatusSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case status.StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '?'
		symbolColor = color.Faint
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", statusWidth, r.Status),
		r.Path)
	if r.Err != nil {
		line += " " + color.New(color.FgRed).Sprint(r.Err.Error())
	}
	return line
}

// 📝 Processing announces that a file is being sent to the model
func (l *Logger) Processing(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "Processing file: %s\n", path)
	l.zlog.Debug().Str("file", path).Msg("processing file")
}

// 📝 Processed announces that the model answered for a file
func (l *Logger) Processed(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "File has been processed: %s\n", path)
	l.zlog.Debug().Str("file", path).Msg("file processed")
}

// 📝 LogResult logs the outcome of one file
func (l *Logger) LogResult(ctx context.Context, r status.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatResult(r))

	ev := l.zlog.Info()
	if r.Err != nil {
		ev = l.zlog.Error().Err(r.Err)
	}
	ev.Str("file", r.Path).
		Str("status", r.Status.String()).
		Dur("duration", r.Duration).
		Msg("file result")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("llmigrate")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
