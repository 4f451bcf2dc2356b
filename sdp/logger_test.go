// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import (
	"strings"
	"testing"
)

func TestLoggerEnable(t *testing.T) {
	var nilLogger *Logger
	if nilLogger.enable(LogLast) {
		t.Fatal("TestLoggerEnable: nil logger enabled")
	}
	if (&Logger{Level: LogTrace}).enable(LogLast) {
		t.Fatal("TestLoggerEnable: logger without writer enabled")
	}
	var sb strings.Builder
	l := &Logger{Level: LogEval, Msg: &sb}
	if !l.enable(LogLast) || !l.enable(LogEval) {
		t.Fatal("TestLoggerEnable: eval logger rejected lower levels")
	}
	if l.enable(LogTrace) {
		t.Fatal("TestLoggerEnable: eval logger accepted trace level")
	}
}

func TestLoggerEvery(t *testing.T) {
	cases := []struct {
		level LogLevel
		want  int
	}{
		{LogNoop, 1},
		{LogLast, 1},
		{LogEval, 1}, // stride 1, same cadence as LogTrace
		{5, 5},
		{98, 98},
		{LogTrace, 1},
		{LogTrace + 1, 1},
	}
	for _, c := range cases {
		l := &Logger{Level: c.level}
		if got := l.every(); got != c.want {
			t.Fatalf("TestLoggerEvery: level %d got stride %d want %d", c.level, got, c.want)
		}
	}
}
