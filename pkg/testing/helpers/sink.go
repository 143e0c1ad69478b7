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

package helpers

import (
	"strings"

	"github.com/smenu/smenu/pkg/helpers/syncutil"
	"github.com/smenu/smenu/pkg/logging"
)

// PostedLine is one line received by a MemorySink.
type PostedLine struct {
	Line     string
	Source   string
	Priority logging.Priority
}

// MemorySink records every posted line for later assertions. It is safe for
// concurrent use by relays and the supervisor.
type MemorySink struct {
	lines []PostedLine
	mu    syncutil.Mutex
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Post(line, source string, p logging.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, PostedLine{Line: line, Source: source, Priority: p})
}

// Lines returns a copy of everything posted so far, in arrival order.
func (s *MemorySink) Lines() []PostedLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PostedLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// WithPriority returns the posted lines at priority p.
func (s *MemorySink) WithPriority(p logging.Priority) []PostedLine {
	var out []PostedLine
	for _, l := range s.Lines() {
		if l.Priority == p {
			out = append(out, l)
		}
	}
	return out
}

// FromSource returns the posted lines tagged with source.
func (s *MemorySink) FromSource(source string) []PostedLine {
	var out []PostedLine
	for _, l := range s.Lines() {
		if l.Source == source {
			out = append(out, l)
		}
	}
	return out
}

// Contains reports whether any line at priority p contains substr.
func (s *MemorySink) Contains(p logging.Priority, substr string) bool {
	for _, l := range s.WithPriority(p) {
		if strings.Contains(l.Line, substr) {
			return true
		}
	}
	return false
}

// Logger returns a launcher logger writing into the sink.
func (s *MemorySink) Logger() *logging.Logger {
	return logging.NewLogger(s, logging.Source)
}
