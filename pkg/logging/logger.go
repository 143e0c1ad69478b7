// sMenu
// Copyright (c) 2026 The sMenu Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of sMenu.
//
// sMenu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sMenu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sMenu.  If not, see <http://www.gnu.org/licenses/>.

package logging

import (
	"errors"
	"fmt"
)

// Source is the name the launcher posts its own lines under.
const Source = "smenu"

// Logger posts messages to a sink under a fixed source name.
type Logger struct {
	sink   Sink
	source string
}

func NewLogger(sink Sink, source string) *Logger {
	return &Logger{sink: sink, source: source}
}

// Sink returns the sink the logger writes to.
func (l *Logger) Sink() Sink {
	return l.sink
}

func (l *Logger) Debug(msg string) {
	l.sink.Post(msg, l.source, Debug)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(msg string) {
	l.sink.Post(msg, l.source, Info)
}

func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.sink.Post(msg, l.source, Warning)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.sink.Post(msg, l.source, Error)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Critical(msg string) {
	l.sink.Post(msg, l.source, Critical)
}

func (l *Logger) Criticalf(format string, args ...any) {
	l.Critical(fmt.Sprintf(format, args...))
}

// Failure logs err at critical priority as a single line containing msg and
// every error in its cause chain, outermost first.
func (l *Logger) Failure(err error, msg string) {
	if err == nil {
		return
	}
	line := msg
	for i, cause := range CauseChain(err) {
		if i == 0 {
			line += ": " + cause
		} else {
			line += "\n  caused by: " + cause
		}
	}
	l.Critical(line)
}

// CauseChain flattens err into the messages of each distinct error in its
// chain. Joined errors are walked depth first. A wrapping error whose
// message only repeats its cause is still listed, so the chain shows each
// layer of context.
func CauseChain(err error) []string {
	var chain []string
	var walk func(e error)
	walk = func(e error) {
		for e != nil {
			if joined, ok := e.(interface{ Unwrap() []error }); ok {
				for _, inner := range joined.Unwrap() {
					walk(inner)
				}
				return
			}
			chain = append(chain, ownMessage(e))
			e = errors.Unwrap(e)
		}
	}
	walk(err)
	return chain
}

// ownMessage strips the wrapped cause's text from a "context: cause"
// message so each layer is only printed once.
func ownMessage(e error) string {
	msg := e.Error()
	inner := errors.Unwrap(e)
	if inner == nil {
		return msg
	}
	suffix := ": " + inner.Error()
	if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
		return msg[:len(msg)-len(suffix)]
	}
	return msg
}
