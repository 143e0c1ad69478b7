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

package config

import (
	"errors"
	"fmt"
)

// Category is the menu tab a static item belongs to.
type Category string

const (
	CategoryTools    Category = "tools"
	CategoryPrograms Category = "programs"
	// CategoryEmulators is reserved for ROM entries discovered from systems.
	// Static items cannot use it.
	CategoryEmulators Category = "emulators"
)

// Mode decides how a launched program is wired to the virtual consoles.
type Mode string

const (
	// ModeConsole programs own a text console and its terminal directly.
	ModeConsole Mode = "console"
	// ModeGraphical programs draw through the compositor and have their
	// output captured into the log.
	ModeGraphical Mode = "graphical"
)

var ErrUnsupportedCategory = errors.New("unsupported category")

// UnsupportedCategoryError reports a static item declared with a category
// the menu has no tab for.
type UnsupportedCategoryError struct {
	Item     string
	Category Category
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("item %q: unsupported category %q", e.Item, e.Category)
}

func (*UnsupportedCategoryError) Unwrap() error {
	return ErrUnsupportedCategory
}

// CheckCategory returns an *UnsupportedCategoryError unless the item's
// category is one a static item may use.
func (i *Item) CheckCategory() error {
	switch i.Category {
	case CategoryTools, CategoryPrograms:
		return nil
	default:
		return &UnsupportedCategoryError{Item: i.Name, Category: i.Category}
	}
}

// EnvPairs converts a config env list into key/value pairs, keeping order.
func EnvPairs(env [][]string) [][2]string {
	if len(env) == 0 {
		return nil
	}
	out := make([][2]string, 0, len(env))
	for _, kv := range env {
		if len(kv) != 2 {
			continue
		}
		out = append(out, [2]string{kv[0], kv[1]})
	}
	return out
}
