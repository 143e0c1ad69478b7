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

// Package telemetry reports error and critical log lines to Sentry when the
// operator opts in. Home directory names are stripped before anything leaves
// the machine.
package telemetry

import (
	"fmt"
	"regexp"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/smenu/smenu/pkg/config"
	"github.com/smenu/smenu/pkg/logging"
)

const flushTimeout = 2 * time.Second

var userHomeRe = regexp.MustCompile(`(?i)/home/[^/]+/`)

// Reporter ships log lines to one Sentry hub. A nil Reporter reports
// nothing, and all of its methods may be called on it.
type Reporter struct {
	hub    *sentry.Hub
	writer *sentryzerolog.Writer
	once   sync.Once
}

// Start returns a Reporter layered onto the global logger, or nil when
// reporting is switched off or no DSN is configured. Lines relayed from
// programs are reported like the menu's own.
func Start(cfg config.Telemetry, appVersion string) (*Reporter, error) {
	switch {
	case !cfg.ErrorReporting:
		log.Debug().Msg("error reporting disabled")
		return nil, nil //nolint:nilnil // a nil Reporter reports nothing
	case cfg.DSN == "":
		log.Warn().Msg("error reporting enabled without a dsn, not reporting")
		return nil, nil //nolint:nilnil // a nil Reporter reports nothing
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Release:          config.AppName + "@" + appVersion,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return scrub(event)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	r := &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}
	// each boot reports as a new session, no device identity is kept
	r.hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{ID: uuid.NewString()})
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
	})

	r.writer, err = sentryzerolog.NewWithHub(r.hub, sentryzerolog.Options{
		Levels:       []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
		FlushTimeout: flushTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry log writer: %w", err)
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(logging.LogWriter(), r.writer)).
		With().Timestamp().Caller().Logger()
	log.Info().Msg("error reporting enabled")
	return r, nil
}

// Flush waits for pending events to be sent.
func (r *Reporter) Flush() {
	if r == nil {
		return
	}
	r.hub.Flush(flushTimeout)
}

// Close flushes and detaches the reporter. Later calls do nothing.
func (r *Reporter) Close() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		log.Logger = log.Output(logging.LogWriter()).
			With().Timestamp().Caller().Logger()
		_ = r.writer.Close()
		r.hub.Flush(flushTimeout)
	})
}

// scrub drops the host name and user home names from everything in event
// that may carry a path.
func scrub(event *sentry.Event) *sentry.Event {
	event.ServerName = ""
	event.Message = stripHome(event.Message)

	for i := range event.Exception {
		event.Exception[i].Value = stripHome(event.Exception[i].Value)
		scrubFrames(event.Exception[i].Stacktrace)
	}
	for i := range event.Threads {
		scrubFrames(event.Threads[i].Stacktrace)
	}
	for k, v := range event.Extra {
		if str, ok := v.(string); ok {
			event.Extra[k] = stripHome(str)
		}
	}
	return event
}

func scrubFrames(st *sentry.Stacktrace) {
	if st == nil {
		return
	}
	for i := range st.Frames {
		st.Frames[i].AbsPath = stripHome(st.Frames[i].AbsPath)
		st.Frames[i].Filename = stripHome(st.Frames[i].Filename)
	}
}

func stripHome(s string) string {
	return userHomeRe.ReplaceAllString(s, "/home/<user>/")
}
