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

package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/smenu/smenu/pkg/config"
	"github.com/smenu/smenu/pkg/logging"
	"github.com/spf13/afero"
)

type discoverer struct {
	fs        afero.Fs
	log       *logging.Logger
	emulators []config.Emulator
}

// discover returns an entry for every ROM of sys, or nothing if the system
// has to be skipped.
func (d *discoverer) discover(sys *config.System) []Entry {
	dir := sys.RomDirectory

	info, err := d.fs.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		d.log.Errorf("rom directory %s for system %s does not exist, skipping system", dir, sys.Name)
		return nil
	} else if err != nil {
		d.log.Errorf("failed to stat rom directory %s for system %s: %v", dir, sys.Name, err)
		return nil
	}
	if !info.IsDir() {
		d.log.Errorf("rom directory %s for system %s is not a directory, skipping system", dir, sys.Name)
		return nil
	}

	// afero.ReadDir sorts by filename, so ids are stable between runs
	files, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		d.log.Errorf("failed to read rom directory %s for system %s: %v", dir, sys.Name, err)
		return nil
	}

	var emu *config.Emulator
	var found []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		filename := f.Name()
		ext := Extension(filename)
		if !sys.AllowsExtension(ext) {
			d.log.Warnf("skipping %s for system %s: expected one of extensions %v",
				filename, sys.Name, sys.AllowedExtensions)
			continue
		}

		if emu == nil {
			emu = d.emulatorFor(sys.Name)
			if emu == nil {
				d.log.Errorf("no emulator runs system %s, skipping system", sys.Name)
				return nil
			}
		}

		romPath, err := filepath.Abs(filepath.Join(dir, filename))
		if err != nil {
			d.log.Errorf("failed to resolve path of %s: %v", filename, err)
			continue
		}

		args := make([]string, 0, len(emu.Args)+1)
		args = append(args, emu.Args...)
		args = append(args, romPath)

		found = append(found, Entry{
			Name:       DisplayName(filename),
			Category:   config.CategoryEmulators,
			System:     sys.Name,
			Mode:       config.ModeGraphical,
			Executable: emu.Executable,
			Args:       args,
			Env:        envVars(emu.Env),
		})
	}

	if len(found) > 0 {
		d.log.Debugf("found %d roms for system %s", len(found), sys.Name)
	}
	return found
}

// emulatorFor returns the first declared emulator serving system.
func (d *discoverer) emulatorFor(system string) *config.Emulator {
	for i := range d.emulators {
		if d.emulators[i].Serves(system) {
			return &d.emulators[i]
		}
	}
	return nil
}

// Extension returns the text after the last dot of filename, or "" if there
// is no dot.
func Extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx+1:]
}

// DisplayName returns the text before the first dot of filename. Names that
// start with a dot keep their full name.
func DisplayName(filename string) string {
	idx := strings.Index(filename, ".")
	if idx <= 0 {
		return filename
	}
	return filename[:idx]
}
