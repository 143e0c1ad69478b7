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

//go:build deadlock

// Package syncutil holds the locks used across sMenu. Building with
// -tags=deadlock swaps them for go-deadlock's detecting implementations,
// which report lock-order problems to the log file.
package syncutil

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

type (
	Mutex   = deadlock.Mutex
	RWMutex = deadlock.RWMutex
)

// reportWriter turns detector reports into log lines. The menu owns the
// terminal, so stderr is not readable while it runs.
type reportWriter struct{}

func (reportWriter) Write(p []byte) (int, error) {
	if msg := strings.TrimRight(string(p), "\n"); msg != "" {
		log.Error().Str("detector", "deadlock").Msg(msg)
	}
	return len(p), nil
}

func init() {
	deadlock.Opts.DeadlockTimeout = 2 * time.Minute
	deadlock.Opts.LogBuf = reportWriter{}
}
