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
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/smenu/smenu/pkg/helpers/syncutil"
)

const eventBuffer = 16

// TUI is the terminal menu drawn with tview. It implements EventSource.
type TUI struct {
	app     *tview.Application
	header  *tview.TextView
	pages   *tview.Pages
	events  chan Event
	done    chan struct{}
	runErr  error
	titles  []string
	lists   []*tview.List
	ignore  syncutil.Flag
	current int
	started bool
	mu      syncutil.Mutex
	stop    sync.Once
}

// NewTUI builds the menu for layout. A nil screen uses the real terminal.
func NewTUI(layout Layout, screen tcell.Screen) *TUI {
	SetTheme(&tview.Styles)

	t := &TUI{
		app:    tview.NewApplication(),
		header: tview.NewTextView().SetDynamicColors(true),
		pages:  tview.NewPages(),
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
	if screen != nil {
		t.app.SetScreen(screen)
	}

	widgetID := 0
	for _, tab := range layout.Tabs {
		list := tview.NewList().ShowSecondaryText(false)
		list.SetBorder(true).SetTitle(" " + tab.Title + " ")
		for _, line := range tab.Lines {
			for _, b := range line.Buttons {
				press := ButtonPress{WidgetID: widgetID, EntryID: b.EntryID}
				list.AddItem(b.Label, "", 0, func() {
					t.post(press)
				})
				widgetID++
			}
		}
		title := tab.Title
		list.SetChangedFunc(func(_ int, mainText, _ string, _ rune) {
			t.post(Other{Description: fmt.Sprintf("focus %s/%s", title, mainText)})
		})
		t.pages.AddPage(pageName(len(t.lists)), list, true, len(t.lists) == 0)
		t.titles = append(t.titles, tab.Title)
		t.lists = append(t.lists, list)
	}
	if len(t.lists) == 0 {
		t.pages.AddPage("empty", tview.NewTextView().
			SetTextAlign(tview.AlignCenter).
			SetText("No menu entries configured."), true, true)
	}
	t.drawHeader()

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.header, 1, 0, false).
		AddItem(t.pages, 0, 1, true)

	t.app.SetInputCapture(t.captureInput)
	t.app.SetRoot(root, true)

	return t
}

func pageName(i int) string {
	return fmt.Sprintf("tab-%d", i)
}

// Start runs the UI on its own goroutine.
func (t *TUI) Start() {
	t.mu.Lock()
	t.started = true
	t.mu.Unlock()

	go func() {
		err := t.app.Run()
		if err != nil {
			log.Error().Err(err).Msg("menu UI stopped with error")
		}
		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()
		close(t.events)
		close(t.done)
	}()
}

// Events is closed once the UI has stopped.
func (t *TUI) Events() <-chan Event {
	return t.events
}

func (t *TUI) SetIgnoreInput(ignore bool) {
	t.ignore.Set(ignore)
}

// Exit stops the UI and reports the tab and item that were selected.
func (t *TUI) Exit() State {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if started {
		t.stop.Do(t.app.Stop)
		<-t.done
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	state := State{}
	if t.current < len(t.lists) {
		state.Tab = t.titles[t.current]
		list := t.lists[t.current]
		if list.GetItemCount() > 0 {
			state.Item, _ = list.GetItemText(list.GetCurrentItem())
		}
	}
	return state
}

// Err returns the error the UI stopped with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runErr
}

// post never blocks the UI goroutine. Events beyond the buffer are dropped.
func (t *TUI) post(ev Event) {
	select {
	case t.events <- ev:
	default:
		log.Debug().Msgf("menu event dropped: %T", ev)
	}
}

func (t *TUI) captureInput(ev *tcell.EventKey) *tcell.EventKey {
	if t.ignore.IsSet() {
		return nil
	}

	switch ev.Key() { //nolint:exhaustive
	case tcell.KeyEscape:
		t.post(Quit{})
		return nil
	case tcell.KeyRight, tcell.KeyTab:
		t.switchTab(1)
		return nil
	case tcell.KeyLeft, tcell.KeyBacktab:
		t.switchTab(-1)
		return nil
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			t.post(Quit{})
			return nil
		}
	}
	return ev
}

func (t *TUI) switchTab(delta int) {
	if len(t.lists) < 2 {
		return
	}
	t.mu.Lock()
	t.current = (t.current + delta + len(t.lists)) % len(t.lists)
	current := t.current
	t.mu.Unlock()

	t.pages.SwitchToPage(pageName(current))
	t.app.SetFocus(t.lists[current])
	t.drawHeader()
	t.post(Other{Description: "tab " + t.titles[current]})
}

func (t *TUI) drawHeader() {
	t.mu.Lock()
	current := t.current
	t.mu.Unlock()

	var sb strings.Builder
	for i, title := range t.titles {
		if i == current {
			sb.WriteString("[black:yellow] " + tview.Escape(title) + " [-:-] ")
		} else {
			sb.WriteString(" " + tview.Escape(title) + "  ")
		}
	}
	t.header.SetText(sb.String())
}

// SetTheme applies the menu colours to the tview defaults.
func SetTheme(theme *tview.Theme) {
	theme.PrimitiveBackgroundColor = tcell.ColorDarkBlue
	theme.ContrastBackgroundColor = tcell.ColorBlue
	theme.MoreContrastBackgroundColor = tcell.ColorBlue
	theme.BorderColor = tcell.ColorLightYellow
	theme.TitleColor = tcell.ColorWhite
	theme.PrimaryTextColor = tcell.ColorWhite
	theme.SecondaryTextColor = tcell.ColorYellow
	theme.InverseTextColor = tcell.ColorDarkBlue
}
