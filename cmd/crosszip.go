// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/choria-io/fisk"

	"github.com/choria-io/crosszip/logging"
)

var (
	ctx         context.Context
	debug       bool
	info        bool
	backend     string
	tempRoot    string
	configFile  string
	metricsFile string
	logFormat   string
	Version     = "development"
)

func main() {
	app := fisk.New("crosszip", "Cross platform ZIP archiving using native tools")
	app.Version(Version)
	app.Author("https://choria.io")

	app.Flag("debug", "Enable debug logging").UnNegatableBoolVar(&debug)
	app.Flag("info", "Enable info logging").UnNegatableBoolVar(&info)
	app.Flag("log-format", "Format of diagnostic logs written to stderr").Default(logging.FormatText).EnumVar(&logFormat, logging.Formats...)
	app.Flag("backend", "Backend to use instead of the platform default").PlaceHolder("NAME").StringVar(&backend)
	app.Flag("temp", "Directory to create staging directories in").PlaceHolder("DIR").StringVar(&tempRoot)
	app.Flag("config", "Configuration file to use").PlaceHolder("FILE").ExistingFileVar(&configFile)
	app.Flag("metrics", "Write Prometheus metrics to this file on completion").PlaceHolder("FILE").StringVar(&metricsFile)

	registerArchiveCommand(app)
	registerExtractCommand(app)
	registerBackendsCommand(app)

	ctx, _ = signal.NotifyContext(context.Background(), os.Interrupt)

	app.MustParseWithUsage(os.Args[1:])
}
