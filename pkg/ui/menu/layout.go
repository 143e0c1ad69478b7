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

// Package menu is the on-screen menu: a plain layout tree of tabs, lines and
// stateless buttons, and an event source reporting what the user did.
package menu

// Layout is the whole menu, one tab per group of entries.
type Layout struct {
	Tabs []Tab
}

type Tab struct {
	Title string
	Lines []Line
}

type Line struct {
	Buttons []Button
}

// Button is stateless. It only carries the id reported when pressed.
type Button struct {
	Label   string
	EntryID uint64
}

// Buttons returns every button in layout order.
func (l Layout) Buttons() []Button {
	var out []Button
	for _, tab := range l.Tabs {
		for _, line := range tab.Lines {
			out = append(out, line.Buttons...)
		}
	}
	return out
}

// Event is something the event source reports to the launcher loop.
type Event interface {
	isEvent()
}

// Quit asks the launcher to end.
type Quit struct{}

// ButtonPress reports a stateless button being activated. WidgetID is the
// button's position in layout order.
type ButtonPress struct {
	WidgetID int
	EntryID  uint64
}

// Other is any event the launcher does not act on, such as focus changes.
type Other struct {
	Description string
}

func (Quit) isEvent()        {}
func (ButtonPress) isEvent() {}
func (Other) isEvent()       {}

// State is what the menu looked like when it exited.
type State struct {
	Tab  string
	Item string
}

// EventSource delivers menu events. The channel must keep being drained
// while a program runs or the UI stalls. While input is ignored the source
// still delivers events, but key presses no longer produce selections.
type EventSource interface {
	Events() <-chan Event
	SetIgnoreInput(ignore bool)
	Exit() State
}
