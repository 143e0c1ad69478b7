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

// Package logging provides the line-oriented log sink used by the launcher and
// the relays that forward child process output.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Priority is the severity a line is posted with.
type Priority int

const (
	Debug Priority = iota
	Info
	Warning
	Error
	Critical
)

func (p Priority) String() string {
	switch p {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level maps a priority onto the zerolog level it is written at. Critical
// lines use the fatal level but are always emitted with WithLevel, so they
// never terminate the process.
func (p Priority) Level() zerolog.Level {
	switch p {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warning:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	case Critical:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}

// Sink accepts single log lines tagged with the name of their source.
type Sink interface {
	Post(line, source string, p Priority)
}

// ZerologSink posts lines to a zerolog logger. A nil logger means the
// global logger.
type ZerologSink struct {
	logger *zerolog.Logger
}

func NewZerologSink(logger *zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

func (s *ZerologSink) Post(line, source string, p Priority) {
	l := s.logger
	if l == nil {
		l = &log.Logger
	}
	l.WithLevel(p.Level()).Str("source", source).Msg(line)
}
