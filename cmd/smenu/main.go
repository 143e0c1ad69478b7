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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/smenu/smenu/internal/telemetry"
	"github.com/smenu/smenu/pkg/config"
	"github.com/smenu/smenu/pkg/console"
	"github.com/smenu/smenu/pkg/helpers"
	"github.com/smenu/smenu/pkg/launcher"
	"github.com/smenu/smenu/pkg/logging"
	"github.com/smenu/smenu/pkg/registry"
	"github.com/smenu/smenu/pkg/ui/menu"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String(
		"config",
		"",
		"path to config file (default $"+config.CfgEnv+" or "+config.DefaultPath+")",
	)
	showVersion := flag.Bool(
		"version",
		false,
		"print version and exit",
	)
	logStderr := flag.Bool(
		"stderr",
		false,
		"also write logs to stderr",
	)
	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		return nil
	}

	var logWriters []io.Writer
	if *logStderr {
		logWriters = []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	}
	if err := logging.Init(helpers.LogDir(), logWriters); err != nil {
		return fmt.Errorf("error setting up logging: %w", err)
	}

	l := logging.NewLogger(logging.NewZerologSink(nil), logging.Source)
	fs := afero.NewOsFs()

	cfg := config.LoadOrDefault(fs, helpers.ConfigPath(*cfgPath), l)
	logging.SetDebug(cfg.DebugLogging)
	l.Infof("%s %s starting", config.AppName, config.AppVersion)

	reporter, err := telemetry.Start(cfg.Telemetry, config.AppVersion)
	if err != nil {
		l.Errorf("error initializing telemetry: %v", err)
	}
	defer reporter.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			reporter.Flush()
			log.Panic().Msgf("panic: %v", err)
		}
	}()

	reg, err := registry.Build(&cfg, fs, l)
	if err != nil {
		l.Failure(err, "invalid menu entries, using built-in default config")
		defaults := config.Defaults()
		reg, err = registry.Build(&defaults, fs, l)
		if err != nil {
			return fmt.Errorf("error building default menu: %w", err)
		}
	}

	privileged := console.HasPrivilege()
	if !privileged {
		l.Warn("no permission to switch consoles, programs share the menu console")
	}
	sup := launcher.NewSupervisor(console.NewArbiter(privileged), l)

	ui := menu.NewTUI(reg.Layout(), nil)
	ui.Start()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		if sig, ok := <-sigs; ok {
			l.Infof("received %s, exiting", sig)
			ui.Exit()
		}
	}()

	state := launcher.NewLoop(ui, reg, sup, l).Run()
	l.Infof("menu closed on tab %q, item %q", state.Tab, state.Item)

	if err := ui.Err(); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
