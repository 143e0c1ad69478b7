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

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/smenu/smenu/pkg/config"
	"github.com/smenu/smenu/pkg/console"
	"github.com/smenu/smenu/pkg/logging"
	"github.com/smenu/smenu/pkg/registry"
	"golang.org/x/sync/errgroup"
)

const (
	// RuntimeDirEnv must point graphical programs at the compositor socket.
	RuntimeDirEnv     = "XDG_RUNTIME_DIR"
	DefaultRuntimeDir = "/run/user/0"
	TermEnv           = "TERM"
	ConsoleTerm       = "linux"

	// DrainTimeout bounds how long a run waits for captured output after the
	// program has exited.
	DrainTimeout = 2 * time.Second
)

// Supervisor runs one entry at a time from console switch to console
// restore. It is not safe for concurrent Runs.
type Supervisor struct {
	arbiter      console.Switcher
	log          *logging.Logger
	clock        clockwork.Clock
	ttyPath      func(n int) string
	newPipe      func() (*os.File, *os.File, error)
	environ      func() []string
	drainTimeout time.Duration
}

func NewSupervisor(arbiter console.Switcher, l *logging.Logger) *Supervisor {
	return &Supervisor{
		arbiter:      arbiter,
		log:          l,
		clock:        clockwork.NewRealClock(),
		ttyPath:      console.TTYPath,
		newPipe:      os.Pipe,
		environ:      os.Environ,
		drainTimeout: DrainTimeout,
	}
}

// Run switches to the entry's console, runs the program to completion and
// switches back to the menu console. A nonzero exit or a fatal signal is
// logged, not returned. Errors switching consoles or starting the program
// are returned.
func (s *Supervisor) Run(entry *registry.Entry) error {
	s.log.Infof("running %s", entry.Name)

	target, clear := console.GraphicalVT, false
	if entry.Mode == config.ModeConsole {
		target, clear = console.TextVT, true
	}
	if err := s.arbiter.Switch(target, clear); err != nil {
		return fmt.Errorf("failed to switch to console %d: %w", target, err)
	}

	//nolint:gosec // executables come from the menu config
	cmd := exec.Command(entry.Executable, entry.Args...)

	var streams *capture
	var tty *os.File
	switch entry.Mode {
	case config.ModeConsole:
		var err error
		tty, err = s.wireConsole(cmd, entry)
		if err != nil {
			return errors.Join(err, s.restore())
		}
	case config.ModeGraphical:
		streams = s.wireGraphical(cmd, entry)
	default:
		return errors.Join(fmt.Errorf("unknown mode %q for %s", entry.Mode, entry.Name), s.restore())
	}

	err := cmd.Start()
	if tty != nil {
		// the child holds its own copies
		_ = tty.Close()
	}
	if err != nil {
		streams.abort()
		return errors.Join(fmt.Errorf("failed to start %s: %w", entry.Name, err), s.restore())
	}
	s.log.Debugf("started %s (pid %d): %v", entry.Name, cmd.Process.Pid, cmd.Args)

	streams.start()
	waitErr := cmd.Wait()
	streams.drain(s.clock, s.drainTimeout)

	return errors.Join(s.classify(entry, waitErr), s.restore())
}

func (s *Supervisor) restore() error {
	if err := s.arbiter.Switch(console.MenuVT, false); err != nil {
		return fmt.Errorf("failed to switch back to console %d: %w", console.MenuVT, err)
	}
	return nil
}

// wireConsole binds all three standard streams to the text console.
func (s *Supervisor) wireConsole(cmd *exec.Cmd, entry *registry.Entry) (*os.File, error) {
	path := s.ttyPath(console.TextVT)
	//nolint:gosec // device path is fixed
	tty, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for %s: %w", path, entry.Name, err)
	}

	cmd.Stdin = tty
	cmd.Stdout = tty
	cmd.Stderr = tty
	cmd.Env = s.env(entry, TermEnv+"="+ConsoleTerm)
	return tty, nil
}

// wireGraphical gives the program an empty stdin and captures stdout and
// stderr. A stream that cannot be captured is discarded.
func (s *Supervisor) wireGraphical(cmd *exec.Cmd, entry *registry.Entry) *capture {
	var inject []string
	if entry.HasEnv(RuntimeDirEnv) {
		s.log.Infof("%s already sets %s, not overriding", entry.Name, RuntimeDirEnv)
	} else {
		inject = append(inject, RuntimeDirEnv+"="+DefaultRuntimeDir)
	}

	cmd.Stdin = nil
	cmd.Env = s.env(entry, inject...)

	c := &capture{log: s.log, source: entry.Name}
	if w := c.pipe(s.newPipe, "stdout", logging.Info); w != nil {
		cmd.Stdout = w
	}
	if w := c.pipe(s.newPipe, "stderr", logging.Error); w != nil {
		cmd.Stderr = w
	}
	return c
}

// env layers the process environment, the wiring variables and the entry's
// own variables, later values winning.
func (s *Supervisor) env(entry *registry.Entry, inject ...string) []string {
	base := s.environ()
	env := make([]string, 0, len(base)+len(inject)+len(entry.Env))
	env = append(env, base...)
	env = append(env, inject...)
	for _, kv := range entry.Env {
		env = append(env, kv.Key+"="+kv.Value)
	}
	return env
}

// classify logs how the program ended. Only failures of the wait itself
// are returned.
func (s *Supervisor) classify(entry *registry.Entry, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("failed waiting for %s: %w", entry.Name, err)
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		s.log.Criticalf("%s (%s) was terminated by signal %d (%s)",
			entry.Name, entry.Executable, int(ws.Signal()), ws.Signal())
		return nil
	}

	s.log.Criticalf("%s (%s) exited with code %d", entry.Name, entry.Executable, exitErr.ExitCode())
	return nil
}

type stream struct {
	r        *os.File
	w        *os.File
	name     string
	priority logging.Priority
}

// capture owns the output pipes of one graphical run. A nil capture is a
// run without captured output.
type capture struct {
	log     *logging.Logger
	group   errgroup.Group
	source  string
	streams []stream
}

func (c *capture) pipe(newPipe func() (*os.File, *os.File, error), name string, p logging.Priority) *os.File {
	r, w, err := newPipe()
	if err != nil {
		c.log.Errorf("failed to capture %s of %s, its output will be missing from the log: %v",
			name, c.source, err)
		return nil
	}
	c.streams = append(c.streams, stream{r: r, w: w, name: name, priority: p})
	return w
}

// start closes the parent's write ends and starts one relay per stream.
func (c *capture) start() {
	if c == nil {
		return
	}
	for _, st := range c.streams {
		_ = st.w.Close()
		r, p := st.r, st.priority
		c.group.Go(func() error {
			return Relay(r, c.source, p, c.log.Sink())
		})
	}
}

// drain waits for the relays to reach end of stream. Streams still open
// after timeout, for example held by a background child of the program, are
// closed.
func (c *capture) drain(clock clockwork.Clock, timeout time.Duration) {
	if c == nil || len(c.streams) == 0 {
		return
	}

	done := make(chan error, 1)
	go func() {
		done <- c.group.Wait()
	}()

	var err error
	select {
	case err = <-done:
	case <-clock.After(timeout):
		c.log.Debugf("output of %s still open after %s, closing", c.source, timeout)
		c.closeReaders()
		err = <-done
	}
	if err != nil {
		c.log.Errorf("capturing output of %s: %v", c.source, err)
	}
	c.closeReaders()
}

func (c *capture) closeReaders() {
	for _, st := range c.streams {
		_ = st.r.Close()
	}
}

// abort releases both pipe ends when the program never started.
func (c *capture) abort() {
	if c == nil {
		return
	}
	for _, st := range c.streams {
		_ = st.w.Close()
		_ = st.r.Close()
	}
}
