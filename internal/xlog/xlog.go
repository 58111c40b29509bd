// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xlog is a small structured logger for cmd/sha3sum, in the
// shape of go-ethereum's log package: a level-prefixed, optionally
// colorized line writer that annotates each record with its caller.
// Nothing in the hash core imports this package — spec.md section 5
// is explicit that the hash function is a pure transformation with no
// I/O, and that discipline extends to never carrying a logger down
// into keccak or sha3.
package xlog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-stack/stack"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// Level is a log severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
}

var levelColors = map[Level]int{
	LevelError: 31, // red
	LevelWarn:  33, // yellow
	LevelInfo:  32, // green
	LevelDebug: 36, // cyan
}

// Logger writes level-prefixed, caller-annotated records to an
// underlying writer, colorizing the level when the writer is a
// terminal.
type Logger struct {
	w      io.Writer
	color  bool
	prefix string
}

// New returns a Logger writing to os.Stderr, auto-detecting whether
// stderr is a terminal (via go-isatty) to decide whether to colorize;
// go-colorable translates ANSI color codes on Windows consoles that
// don't otherwise support them.
func New(prefix string) *Logger {
	return NewWriter(colorable.NewColorable(os.Stderr), prefix, isatty.IsTerminal(os.Stderr.Fd()))
}

// NewWriter returns a Logger writing to an arbitrary io.Writer, with
// colorization forced on or off by the caller. It exists so tests (and
// callers redirecting output to a file) don't have to go through a real
// terminal to get deterministic output.
func NewWriter(w io.Writer, prefix string, color bool) *Logger {
	return &Logger{w: w, color: color, prefix: prefix}
}

// log writes one record at the given level, with the immediate caller
// (one frame above the exported Error/Warn/Info/Debug method) captured
// via go-stack.
func (l *Logger) log(depth int, level Level, msg string, args ...interface{}) {
	call := stack.Caller(depth)
	line := fmt.Sprintf(msg, args...)
	ts := time.Now().Format("15:04:05.000")

	name := levelNames[level]
	if l.color {
		name = fmt.Sprintf("\x1b[%dm%s\x1b[0m", levelColors[level], name)
	}

	prefix := l.prefix
	if prefix != "" {
		prefix = prefix + ": "
	}
	fmt.Fprintf(l.w, "%s [%s] %s%s (%n)\n", ts, name, prefix, line, call)
}

func (l *Logger) Error(msg string, args ...interface{}) { l.log(2, LevelError, msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log(2, LevelWarn, msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log(2, LevelInfo, msg, args...) }
func (l *Logger) Debug(msg string, args ...interface{}) { l.log(2, LevelDebug, msg, args...) }
