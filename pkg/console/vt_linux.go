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

//go:build linux

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// From linux/vt.h.
const (
	vtActivate   = 0x5606
	vtWaitActive = 0x5607
)

type vtDevice struct {
	f *os.File
}

func openVTDevice(path string) (Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open console device: %w", err)
	}
	return &vtDevice{f: f}, nil
}

func (d *vtDevice) Activate(n int) error {
	//nolint:gosec // fd fits in int on every supported platform
	if err := unix.IoctlSetInt(int(d.f.Fd()), vtActivate, n); err != nil {
		return fmt.Errorf("VT_ACTIVATE: %w", err)
	}
	return nil
}

func (d *vtDevice) WaitActive(n int) error {
	//nolint:gosec // fd fits in int on every supported platform
	if err := unix.IoctlSetInt(int(d.f.Fd()), vtWaitActive, n); err != nil {
		return fmt.Errorf("VT_WAITACTIVE: %w", err)
	}
	return nil
}

func (d *vtDevice) Close() error {
	return d.f.Close()
}

// HasPrivilege reports whether the process may switch consoles: it is root
// or holds CAP_SYS_TTY_CONFIG in its effective set.
func HasPrivilege() bool {
	if unix.Geteuid() == 0 {
		return true
	}

	hdr := unix.CapUserHeader{Version: unix.LINUX_CAPABILITY_VERSION_3}
	var data [2]unix.CapUserData
	if err := unix.Capget(&hdr, &data[0]); err != nil {
		return false
	}

	idx, bit := unix.CAP_SYS_TTY_CONFIG/32, uint(unix.CAP_SYS_TTY_CONFIG%32)
	return data[idx].Effective&(1<<bit) != 0
}
