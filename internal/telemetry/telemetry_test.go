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

package telemetry

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/smenu/smenu/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no username in path",
			input:    "/usr/bin/weston-terminal",
			expected: "/usr/bin/weston-terminal",
		},
		{
			name:     "rom in home directory",
			input:    "/home/kiosk/roms/gba/Metroid.gba",
			expected: "/home/<user>/roms/gba/Metroid.gba",
		},
		{
			name:     "uppercase home",
			input:    "/Home/Kiosk/roms/gba/Metroid.gba",
			expected: "/home/<user>/roms/gba/Metroid.gba",
		},
		{
			name:     "multiple paths in message",
			input:    "mgba (/home/alice/bin/mgba) could not open /home/bob/roms/a.gba",
			expected: "mgba (/home/<user>/bin/mgba) could not open /home/<user>/roms/a.gba",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, stripHome(tt.input))
		})
	}
}

func TestScrub(t *testing.T) {
	t.Parallel()

	event := &sentry.Event{
		ServerName: "kiosk-01",
		Message:    "mgba exited with code 1: /home/kiosk/roms/a.gba",
		Extra:      map[string]any{"rom": "/home/kiosk/roms/a.gba", "code": 1},
		Exception: []sentry.Exception{{
			Value: "open /home/kiosk/roms/b.gba: permission denied",
			Stacktrace: &sentry.Stacktrace{Frames: []sentry.Frame{
				{AbsPath: "/home/dev/smenu/pkg/launcher/supervisor.go", Filename: "supervisor.go"},
			}},
		}, {
			Value: "no stack",
		}},
		Threads: []sentry.Thread{{
			Stacktrace: &sentry.Stacktrace{Frames: []sentry.Frame{
				{AbsPath: "/home/dev/smenu/cmd/smenu/main.go"},
			}},
		}},
	}

	got := scrub(event)
	assert.Empty(t, got.ServerName)
	assert.Equal(t, "mgba exited with code 1: /home/<user>/roms/a.gba", got.Message)
	assert.Equal(t, "/home/<user>/roms/a.gba", got.Extra["rom"])
	assert.Equal(t, 1, got.Extra["code"])
	assert.Equal(t, "open /home/<user>/roms/b.gba: permission denied", got.Exception[0].Value)
	assert.Equal(t, "/home/<user>/smenu/pkg/launcher/supervisor.go", got.Exception[0].Stacktrace.Frames[0].AbsPath)
	assert.Equal(t, "supervisor.go", got.Exception[0].Stacktrace.Frames[0].Filename)
	assert.Equal(t, "/home/<user>/smenu/cmd/smenu/main.go", got.Threads[0].Stacktrace.Frames[0].AbsPath)
}

func TestStart_Disabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Telemetry
	}{
		{name: "switched off", cfg: config.Telemetry{ErrorReporting: false, DSN: "https://key@example.com/1"}},
		{name: "no dsn", cfg: config.Telemetry{ErrorReporting: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := Start(tt.cfg, "test")
			require.NoError(t, err)
			assert.Nil(t, r)
		})
	}
}

func TestStart_InvalidDSN(t *testing.T) {
	t.Parallel()

	r, err := Start(config.Telemetry{ErrorReporting: true, DSN: "not a dsn"}, "test")
	require.Error(t, err)
	assert.Nil(t, r)
}

func TestNilReporter(t *testing.T) {
	t.Parallel()

	var r *Reporter
	assert.NotPanics(t, func() {
		r.Flush()
		r.Close()
	})
}

// Replaces the global logger, so not parallel.
func TestReporter_CloseTwice(t *testing.T) {
	r, err := Start(config.Telemetry{ErrorReporting: true, DSN: "https://key@example.com/1"}, "test")
	require.NoError(t, err)
	require.NotNil(t, r)

	r.Flush()
	assert.NotPanics(t, func() {
		r.Close()
		r.Close()
	})
}
