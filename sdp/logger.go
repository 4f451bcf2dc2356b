// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import (
	"fmt"
	"io"
)

// LogLevel controls the frequency and type of logger output
type LogLevel int

const (
	// LogNoop no output is generated (level < 0)
	LogNoop LogLevel = -1
	// LogLast print only one line at the last iteration
	LogLast LogLevel = 0
	// LogEval print residuals every `level` iterations for any (0 < level < 99);
	// the LogEval value itself has stride 1 and so traces each iteration
	LogEval LogLevel = 1
	// LogTrace print residuals of every iteration
	LogTrace LogLevel = 99
)

// Logger handles iteration tracing for the splitting backend.
// Note the writer must be thread-safe when solves run concurrently.
type Logger struct {
	Level LogLevel
	Msg   io.Writer // Writer to output log messages.
}

func (l *Logger) enable(level LogLevel) bool {
	return l != nil && l.Msg != nil && l.Level >= level
}

func (l *Logger) every() int {
	if l.Level >= LogTrace {
		return 1
	}
	if n := int(l.Level); n > 0 {
		return n
	}
	return 1
}

func (l *Logger) log(format string, a ...any) {
	if len(a) > 0 {
		_, _ = fmt.Fprintf(l.Msg, format, a...)
	} else {
		_, _ = fmt.Fprint(l.Msg, format)
	}
}
