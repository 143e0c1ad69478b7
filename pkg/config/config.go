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

// Package config loads the launcher's declarative menu configuration: static
// items, emulators and the game systems they serve.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/smenu/smenu/pkg/logging"
	"github.com/spf13/afero"
)

var AppVersion = "DEVELOPMENT"

const (
	AppName     = "smenu"
	CfgEnv      = "SMENU_CFG"
	CfgFile     = "config.toml"
	DefaultPath = "/etc/smenu/" + CfgFile
)

//go:embed default.toml
var defaultConfig []byte

type Values struct {
	Telemetry    Telemetry  `toml:"telemetry"`
	Items        []Item     `toml:"item" validate:"dive"`
	Emulators    []Emulator `toml:"emulator" validate:"dive"`
	Systems      []System   `toml:"system" validate:"dive"`
	DebugLogging bool       `toml:"debug_logging"`
}

type Telemetry struct {
	DSN            string `toml:"dsn"`
	ErrorReporting bool   `toml:"error_reporting"`
}

// Item is a statically declared menu entry.
type Item struct {
	Name       string     `toml:"name" validate:"required"`
	Category   Category   `toml:"category" validate:"required"`
	Mode       Mode       `toml:"mode" validate:"required,oneof=console graphical"`
	Executable string     `toml:"executable" validate:"required"`
	Args       []string   `toml:"args"`
	Env        [][]string `toml:"env" validate:"dive,len=2"`
}

// Emulator declares a program able to run ROMs of the listed systems.
type Emulator struct {
	Name       string     `toml:"name"`
	Executable string     `toml:"executable" validate:"required"`
	Args       []string   `toml:"args"`
	Env        [][]string `toml:"env" validate:"dive,len=2"`
	Systems    []string   `toml:"systems" validate:"required,min=1,dive,required"`
}

// System is a game system whose ROMs are discovered from a directory.
type System struct {
	Name              string   `toml:"name" validate:"required"`
	RomDirectory      string   `toml:"rom_directory" validate:"required"`
	AllowedExtensions []string `toml:"allowed_extensions" validate:"required,min=1,dive,required"`
}

// Serves reports whether the emulator declares support for system.
func (e *Emulator) Serves(system string) bool {
	for _, s := range e.Systems {
		if s == system {
			return true
		}
	}
	return false
}

// AllowsExtension reports whether ext (without the dot) is one of the
// system's allowed ROM extensions.
func (s *System) AllowsExtension(ext string) bool {
	for _, allowed := range s.AllowedExtensions {
		if allowed == ext {
			return true
		}
	}
	return false
}

// Parse decodes and validates a TOML config. Unknown fields are an error.
func Parse(data []byte) (Values, error) {
	var vals Values

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&vals); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Values{}, fmt.Errorf("unknown config fields:\n%s", strict.String())
		}
		return Values{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for i := range vals.Systems {
		exts := vals.Systems[i].AllowedExtensions
		for j, ext := range exts {
			exts[j] = strings.TrimPrefix(ext, ".")
		}
	}

	if err := Validate(&vals); err != nil {
		return Values{}, err
	}

	return vals, nil
}

// Load reads and parses the config file at path.
func Load(fs afero.Fs, path string) (Values, error) {
	if path == "" {
		return Values{}, errors.New("config path not set")
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Values{}, fmt.Errorf("failed to read config file: %w", err)
	}

	vals, err := Parse(data)
	if err != nil {
		return Values{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return vals, nil
}

// Defaults returns the built-in configuration. It panics if the embedded
// file does not parse, which the tests rule out.
func Defaults() Values {
	vals, err := Parse(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return vals
}

// LoadOrDefault loads the config at path, falling back to the built-in
// defaults when the file is missing or invalid.
func LoadOrDefault(fs afero.Fs, path string, l *logging.Logger) Values {
	vals, err := Load(fs, path)
	if err != nil {
		l.Errorf("using built-in default config: %v", err)
		return Defaults()
	}
	l.Infof("loaded config from %s", path)
	return vals
}
