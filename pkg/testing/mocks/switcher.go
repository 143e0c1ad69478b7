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

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockSwitcher is a mock implementation of console.Switcher for testing.
type MockSwitcher struct {
	mock.Mock
}

func NewMockSwitcher() *MockSwitcher {
	return &MockSwitcher{}
}

func (m *MockSwitcher) Switch(target int, clear bool) error {
	args := m.Called(target, clear)
	return args.Error(0)
}

// SetupAllSwitches makes every switch succeed.
func (m *MockSwitcher) SetupAllSwitches() {
	m.On("Switch", mock.Anything, mock.Anything).Return(nil)
}

// Targets returns the consoles switched to, in call order.
func (m *MockSwitcher) Targets() []int {
	var targets []int
	for _, call := range m.Calls {
		if call.Method == "Switch" {
			if n, ok := call.Arguments.Get(0).(int); ok {
				targets = append(targets, n)
			}
		}
	}
	return targets
}
