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

package launcher

import (
	"github.com/smenu/smenu/pkg/logging"
	"github.com/smenu/smenu/pkg/registry"
	"github.com/smenu/smenu/pkg/ui/menu"
)

// Runner runs one entry to completion.
type Runner interface {
	Run(entry *registry.Entry) error
}

// Lookup resolves button payloads to entries.
type Lookup interface {
	Lookup(id registry.EntryID) (registry.Entry, bool)
}

// Loop dispatches menu events. At most one entry runs at a time and the
// menu ignores input while it does.
type Loop struct {
	src     menu.EventSource
	entries Lookup
	runner  Runner
	log     *logging.Logger
}

func NewLoop(src menu.EventSource, entries Lookup, runner Runner, l *logging.Logger) *Loop {
	return &Loop{
		src:     src,
		entries: entries,
		runner:  runner,
		log:     l,
	}
}

// Run handles events until the menu quits or its event stream ends and
// returns the menu's final state.
func (l *Loop) Run() menu.State {
	for ev := range l.src.Events() {
		switch e := ev.(type) {
		case menu.Quit:
			l.log.Info("quit requested")
			return l.src.Exit()
		case menu.ButtonPress:
			if !l.launch(e) {
				return l.src.Exit()
			}
		default:
			l.log.Debugf("ignoring menu event %v", ev)
		}
	}
	return l.src.Exit()
}

// launch runs the pressed entry in the background and discards menu
// events until it finishes. It reports whether the event stream is still
// open.
func (l *Loop) launch(press menu.ButtonPress) bool {
	entry, ok := l.entries.Lookup(press.EntryID)
	if !ok {
		l.log.Debugf("button %d has no entry %d", press.WidgetID, press.EntryID)
		return true
	}

	l.src.SetIgnoreInput(true)
	defer l.src.SetIgnoreInput(false)

	done := make(chan error, 1)
	go func() {
		done <- l.runner.Run(&entry)
	}()

	open := true
	events := l.src.Events()
	for {
		select {
		case err := <-done:
			if err != nil {
				l.log.Failure(err, "failed to run "+entry.Name)
			}
			return open
		case _, ok := <-events:
			if !ok {
				events = nil
				open = false
			}
		}
	}
}
