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

// Package console switches the active Linux virtual console.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// MenuVT is the console the menu itself is drawn on.
	MenuVT = 1
	// GraphicalVT is handed to graphical programs.
	GraphicalVT = 2
	// TextVT is handed to console programs.
	TextVT = 3

	// clearSequence clears the screen and homes the cursor.
	clearSequence = "\033[2J\033[H"
)

// ControlDevices are tried in order when opening a console control device.
var ControlDevices = []string{"/dev/console", "/dev/tty", "/dev/tty0"}

// ErrNoControlDevice is returned when none of the control devices could be
// opened.
var ErrNoControlDevice = errors.New("no console control device available")

// TTYPath returns the device node of virtual console n.
func TTYPath(n int) string {
	return fmt.Sprintf("/dev/tty%d", n)
}

// Switcher changes the active virtual console.
type Switcher interface {
	Switch(target int, clear bool) error
}

// Device is an open console control device.
type Device interface {
	io.Closer
	Activate(n int) error
	WaitActive(n int) error
}

// Arbiter switches virtual consoles through the VT ioctls. An arbiter
// created without privilege does nothing, which allows running the menu as a
// normal user during development.
type Arbiter struct {
	openDevice func(path string) (Device, error)
	openTTY    func(path string) (io.WriteCloser, error)
	ttyPath    func(n int) string
	devices    []string
	privileged bool
}

// NewArbiter returns an arbiter using the real device nodes. Pass the result
// of HasPrivilege as privileged.
func NewArbiter(privileged bool) *Arbiter {
	return &Arbiter{
		privileged: privileged,
		devices:    ControlDevices,
		openDevice: openVTDevice,
		openTTY:    openTTYForWrite,
		ttyPath:    TTYPath,
	}
}

// Privileged reports whether Switch touches the console devices.
func (a *Arbiter) Privileged() bool {
	return a.privileged
}

// Switch activates console target and waits until it is active. If clear is
// set, the target console is also cleared.
func (a *Arbiter) Switch(target int, clear bool) error {
	if !a.privileged {
		return nil
	}

	dev, path, err := a.openControl()
	if err != nil {
		return err
	}
	defer func() {
		_ = dev.Close()
	}()

	if err := dev.Activate(target); err != nil {
		return fmt.Errorf("failed to activate console %d via %s: %w", target, path, err)
	}
	if err := dev.WaitActive(target); err != nil {
		return fmt.Errorf("failed waiting for console %d via %s: %w", target, path, err)
	}

	if clear {
		if err := a.clear(target); err != nil {
			return err
		}
	}

	return nil
}

func (a *Arbiter) openControl() (Device, string, error) {
	var errs []error
	for _, path := range a.devices {
		dev, err := a.openDevice(path)
		if err == nil {
			return dev, path, nil
		}
		errs = append(errs, err)
	}
	return nil, "", fmt.Errorf("%w: %w", ErrNoControlDevice, errors.Join(errs...))
}

func (a *Arbiter) clear(target int) error {
	path := a.ttyPath(target)
	tty, err := a.openTTY(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for clearing: %w", path, err)
	}
	defer func() {
		_ = tty.Close()
	}()

	if _, err := io.WriteString(tty, clearSequence); err != nil {
		return fmt.Errorf("failed to clear %s: %w", path, err)
	}
	return nil
}

func openTTYForWrite(path string) (io.WriteCloser, error) {
	//nolint:gosec // device paths are fixed, not user input
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open tty: %w", err)
	}
	return f, nil
}
