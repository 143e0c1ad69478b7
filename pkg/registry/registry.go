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

// Package registry builds the immutable table of launchable menu entries from
// the static config items and the ROMs found in each system's directory.
package registry

import (
	"fmt"

	"github.com/smenu/smenu/pkg/config"
	"github.com/smenu/smenu/pkg/logging"
	"github.com/smenu/smenu/pkg/ui/menu"
	"github.com/spf13/afero"
)

// EntryID identifies an entry for the lifetime of the process.
type EntryID = uint64

// EnvVar is one environment variable set for a launched program.
type EnvVar struct {
	Key   string
	Value string
}

// Entry is one launchable menu item.
type Entry struct {
	Name       string
	Category   config.Category
	System     string
	Mode       config.Mode
	Executable string
	Args       []string
	Env        []EnvVar
	ID         EntryID
}

// HasEnv reports whether the entry itself declares key.
func (e *Entry) HasEnv(key string) bool {
	for _, kv := range e.Env {
		if kv.Key == key {
			return true
		}
	}
	return false
}

// Registry maps ids to entries. It is never modified after Build returns and
// is safe for concurrent reads.
type Registry struct {
	byID    map[EntryID]int
	entries []Entry
	systems []string
}

// Build assigns ids to the static items in declaration order, then to the
// ROMs discovered for each system. Problems with a system only skip that
// system; an item with an unsupported category fails the whole build.
func Build(cfg *config.Values, fs afero.Fs, l *logging.Logger) (*Registry, error) {
	r := &Registry{byID: make(map[EntryID]int)}

	for i := range cfg.Items {
		item := &cfg.Items[i]
		switch item.Category {
		case config.CategoryTools, config.CategoryPrograms:
		default:
			return nil, fmt.Errorf("failed to build menu: %w",
				&config.UnsupportedCategoryError{Item: item.Name, Category: item.Category})
		}
		r.add(Entry{
			Name:       item.Name,
			Category:   item.Category,
			Mode:       item.Mode,
			Executable: item.Executable,
			Args:       cloneArgs(item.Args),
			Env:        envVars(item.Env),
		})
	}

	d := discoverer{fs: fs, log: l, emulators: cfg.Emulators}
	for i := range cfg.Systems {
		sys := &cfg.Systems[i]
		found := d.discover(sys)
		if len(found) == 0 {
			continue
		}
		r.systems = append(r.systems, sys.Name)
		for _, e := range found {
			r.add(e)
		}
	}

	l.Infof("menu registry built with %d entries", len(r.entries))
	return r, nil
}

func (r *Registry) add(e Entry) {
	e.ID = EntryID(len(r.entries))
	r.byID[e.ID] = len(r.entries)
	r.entries = append(r.entries, e)
}

// Lookup returns the entry with id.
func (r *Registry) Lookup(id EntryID) (Entry, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[idx], true
}

// Entries returns every entry in id order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Layout groups the entries into menu tabs: tools, programs, then one tab
// per system that has ROMs.
func (r *Registry) Layout() menu.Layout {
	tools := menu.Tab{Title: "System Tools"}
	programs := menu.Tab{Title: "Programs"}
	bySystem := make(map[string]*menu.Tab, len(r.systems))
	systemTabs := make([]*menu.Tab, 0, len(r.systems))
	for _, name := range r.systems {
		if _, ok := bySystem[name]; ok {
			continue
		}
		tab := &menu.Tab{Title: name}
		bySystem[name] = tab
		systemTabs = append(systemTabs, tab)
	}

	for _, e := range r.entries {
		line := menu.Line{Buttons: []menu.Button{{Label: e.Name, EntryID: e.ID}}}
		switch e.Category {
		case config.CategoryTools:
			tools.Lines = append(tools.Lines, line)
		case config.CategoryPrograms:
			programs.Lines = append(programs.Lines, line)
		case config.CategoryEmulators:
			if tab, ok := bySystem[e.System]; ok {
				tab.Lines = append(tab.Lines, line)
			}
		}
	}

	layout := menu.Layout{}
	for _, tab := range []*menu.Tab{&tools, &programs} {
		if len(tab.Lines) > 0 {
			layout.Tabs = append(layout.Tabs, *tab)
		}
	}
	for _, tab := range systemTabs {
		layout.Tabs = append(layout.Tabs, *tab)
	}
	return layout
}

func cloneArgs(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return append([]string(nil), args...)
}

func envVars(env [][]string) []EnvVar {
	pairs := config.EnvPairs(env)
	if len(pairs) == 0 {
		return nil
	}
	out := make([]EnvVar, 0, len(pairs))
	for _, kv := range pairs {
		out = append(out, EnvVar{Key: kv[0], Value: kv[1]})
	}
	return out
}
