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

// Package launcher runs menu entries: it hands a virtual console to the
// program, captures its output into the log, reports how it exited and
// returns the console to the menu.
package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smenu/smenu/pkg/logging"
)

// Relay posts each non-empty line read from r to sink until r reaches end of
// stream. Reads that return no data are retried. It returns nil at end of
// stream or when r was closed underneath it, and the read error otherwise.
func Relay(r io.Reader, source string, p logging.Priority, sink logging.Sink) error {
	br := bufio.NewReader(r)
	var pending strings.Builder
	for {
		chunk, err := br.ReadString('\n')
		pending.WriteString(chunk)
		if errors.Is(err, io.ErrNoProgress) {
			continue
		}

		line := strings.TrimRight(pending.String(), "\r\n")
		pending.Reset()
		if line != "" {
			sink.Post(line, source, p)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("failed to read output of %s: %w", source, err)
		}
	}
}
