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
	"testing"

	"github.com/smenu/smenu/pkg/config"
	"github.com/smenu/smenu/pkg/helpers/syncutil"
	"github.com/smenu/smenu/pkg/logging"
	"github.com/smenu/smenu/pkg/registry"
	"github.com/smenu/smenu/pkg/testing/helpers"
	"github.com/smenu/smenu/pkg/testing/mocks"
	"github.com/smenu/smenu/pkg/ui/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeSource struct {
	events  chan menu.Event
	state   menu.State
	ignored []bool
	exits   int
	mu      syncutil.Mutex
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		events: make(chan menu.Event),
		state:  menu.State{Tab: "System Tools", Item: "Htop"},
	}
}

func (f *fakeSource) Events() <-chan menu.Event {
	return f.events
}

func (f *fakeSource) SetIgnoreInput(ignore bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ignored = append(f.ignored, ignore)
}

func (f *fakeSource) Exit() menu.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exits++
	return f.state
}

func (f *fakeSource) ignoreCalls() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.ignored...)
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	cfg := config.Values{Items: []config.Item{
		{Name: "Htop", Category: config.CategoryTools, Mode: config.ModeConsole, Executable: "/usr/bin/htop"},
		{Name: "Weston Terminal", Category: config.CategoryPrograms, Mode: config.ModeGraphical, Executable: "/usr/bin/weston-terminal"},
	}}
	reg, err := registry.Build(&cfg, helpers.NewMemoryFS().Fs, helpers.NewMemorySink().Logger())
	require.NoError(t, err)
	return reg
}

func startLoop(src *fakeSource, reg *registry.Registry, runner Runner, sink *helpers.MemorySink) <-chan menu.State {
	result := make(chan menu.State, 1)
	go func() {
		result <- NewLoop(src, reg, runner, sink.Logger()).Run()
	}()
	return result
}

func TestLoop_QuitReturnsState(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	runner := mocks.NewMockRunner()
	result := startLoop(src, testRegistry(t), runner, helpers.NewMemorySink())

	src.events <- menu.Other{Description: "focus"}
	src.events <- menu.Quit{}

	assert.Equal(t, src.state, <-result)
	assert.Equal(t, 1, src.exits)
	runner.AssertNotCalled(t, "Run", mock.Anything)
}

func TestLoop_PressRunsEntry(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	runner := mocks.NewMockRunner()
	runner.On("Run", mock.MatchedBy(func(e *registry.Entry) bool {
		return e.Name == "Weston Terminal"
	})).Return(nil).Once()
	sink := helpers.NewMemorySink()
	result := startLoop(src, testRegistry(t), runner, sink)

	src.events <- menu.ButtonPress{WidgetID: 4, EntryID: 1}
	src.events <- menu.Quit{}
	<-result

	runner.AssertExpectations(t)
	assert.Equal(t, []bool{true, false}, src.ignoreCalls())
	assert.Empty(t, sink.WithPriority(logging.Critical))
}

func TestLoop_UnknownEntryIsIgnored(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	runner := mocks.NewMockRunner()
	result := startLoop(src, testRegistry(t), runner, helpers.NewMemorySink())

	src.events <- menu.ButtonPress{WidgetID: 1, EntryID: 99}
	src.events <- menu.Quit{}
	<-result

	runner.AssertNotCalled(t, "Run", mock.Anything)
	assert.Empty(t, src.ignoreCalls())
}

func TestLoop_EventsDuringRunAreDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	started := make(chan struct{})
	release := make(chan struct{})
	runner := mocks.NewMockRunner()
	runner.On("Run", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()
	result := startLoop(src, testRegistry(t), runner, helpers.NewMemorySink())

	src.events <- menu.ButtonPress{EntryID: 0}
	<-started
	src.events <- menu.ButtonPress{EntryID: 1}
	src.events <- menu.Quit{}
	src.events <- menu.ButtonPress{EntryID: 0}
	close(release)

	src.events <- menu.Quit{}
	<-result

	runner.AssertNumberOfCalls(t, "Run", 1)
	assert.Equal(t, 1, src.exits)
}

func TestLoop_RunFailureIsLogged(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	runner := mocks.NewMockRunner()
	runner.On("Run", mock.Anything).Return(errors.New("failed to switch to console 3: no device")).Once()
	sink := helpers.NewMemorySink()
	result := startLoop(src, testRegistry(t), runner, sink)

	src.events <- menu.ButtonPress{EntryID: 0}
	src.events <- menu.Quit{}
	<-result

	critical := sink.WithPriority(logging.Critical)
	require.Len(t, critical, 1)
	assert.Contains(t, critical[0].Line, "failed to run Htop")
	assert.Contains(t, critical[0].Line, "no device")
	assert.Equal(t, []bool{true, false}, src.ignoreCalls())
}

func TestLoop_ClosedStreamEndsLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	result := startLoop(src, testRegistry(t), mocks.NewMockRunner(), helpers.NewMemorySink())

	close(src.events)
	assert.Equal(t, src.state, <-result)
	assert.Equal(t, 1, src.exits)
}

func TestLoop_StreamClosedDuringRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	started := make(chan struct{})
	release := make(chan struct{})
	runner := mocks.NewMockRunner()
	runner.On("Run", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()
	result := startLoop(src, testRegistry(t), runner, helpers.NewMemorySink())

	src.events <- menu.ButtonPress{EntryID: 1}
	<-started
	close(src.events)

	select {
	case <-result:
		t.Fatal("loop returned before the program finished")
	default:
	}
	close(release)

	assert.Equal(t, src.state, <-result)
	assert.Equal(t, 1, src.exits)
	runner.AssertExpectations(t)
}
