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

package menu

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() Layout {
	return Layout{Tabs: []Tab{
		{Title: "System Tools", Lines: []Line{
			{Buttons: []Button{{Label: "Htop", EntryID: 0}}},
			{Buttons: []Button{{Label: "Power Off", EntryID: 1}}},
		}},
		{Title: "Programs", Lines: []Line{
			{Buttons: []Button{{Label: "Weston Terminal", EntryID: 2}}},
		}},
	}}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(80, 25)
	return sim
}

// nextPress waits for the next ButtonPress or Quit, skipping Other events.
func nextPress(t *testing.T, events <-chan Event) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event channel closed")
			if _, other := ev.(Other); other {
				continue
			}
			return ev
		case <-deadline:
			t.Fatal("timed out waiting for menu event")
			return nil
		}
	}
}

// assertNoPress fails if a ButtonPress or Quit arrives within d.
func assertNoPress(t *testing.T, events <-chan Event, d time.Duration) {
	t.Helper()
	deadline := time.After(d)
	for {
		select {
		case ev := <-events:
			if _, other := ev.(Other); !other {
				t.Fatalf("unexpected event %#v", ev)
			}
		case <-deadline:
			return
		}
	}
}

func TestLayout_Buttons(t *testing.T) {
	t.Parallel()

	var labels []string
	for _, b := range testLayout().Buttons() {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Htop", "Power Off", "Weston Terminal"}, labels)
}

func TestTUI_ButtonPressesAndTabs(t *testing.T) {
	sim := newSimScreen(t)
	ui := NewTUI(testLayout(), sim)
	ui.Start()
	time.Sleep(50 * time.Millisecond)

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Equal(t, ButtonPress{WidgetID: 0, EntryID: 0}, nextPress(t, ui.Events()))

	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Equal(t, ButtonPress{WidgetID: 1, EntryID: 1}, nextPress(t, ui.Events()))

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Equal(t, ButtonPress{WidgetID: 2, EntryID: 2}, nextPress(t, ui.Events()))

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.Equal(t, Quit{}, nextPress(t, ui.Events()))

	state := ui.Exit()
	assert.Equal(t, State{Tab: "Programs", Item: "Weston Terminal"}, state)

	// events are closed once the UI has stopped
	for range ui.Events() {
	}
}

func TestTUI_IgnoreInputSwallowsKeys(t *testing.T) {
	sim := newSimScreen(t)
	ui := NewTUI(testLayout(), sim)
	ui.Start()
	time.Sleep(50 * time.Millisecond)

	ui.SetIgnoreInput(true)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assertNoPress(t, ui.Events(), 200*time.Millisecond)

	ui.SetIgnoreInput(false)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.Equal(t, Quit{}, nextPress(t, ui.Events()))

	state := ui.Exit()
	assert.Equal(t, "System Tools", state.Tab)
	assert.Equal(t, "Htop", state.Item)
}

func TestTUI_EmptyLayout(t *testing.T) {
	sim := newSimScreen(t)
	ui := NewTUI(Layout{}, sim)
	ui.Start()
	time.Sleep(50 * time.Millisecond)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.Equal(t, Quit{}, nextPress(t, ui.Events()))
	assert.Equal(t, State{}, ui.Exit())
	require.NoError(t, ui.Err())
}

func TestTUI_ExitWithoutStart(t *testing.T) {
	ui := NewTUI(testLayout(), newSimScreen(t))
	assert.Equal(t, State{Tab: "System Tools", Item: "Htop"}, ui.Exit())
}
