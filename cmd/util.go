// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/SladkyCitron/slogcolor"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/choria-io/crosszip/archiver"
	"github.com/choria-io/crosszip/internal/config"
	"github.com/choria-io/crosszip/logging"
	"github.com/choria-io/crosszip/metrics"
	"github.com/choria-io/crosszip/model"
)

var promRegistry = prometheus.NewRegistry()

func init() {
	metrics.RegisterMetrics(promRegistry)
}

func newArchiver() (*archiver.Archiver, model.Logger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	out := newOutputLogger()

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Source() != "" {
		logger.Debug("Loaded configuration", "file", cfg.Source())
	}

	opts := cfg.Options()

	if backend != "" {
		opts = append(opts, archiver.WithBackend(backend))
	}

	if tempRoot != "" {
		opts = append(opts, archiver.WithTempRoot(tempRoot))
	}

	arch, err := archiver.New(logger, opts...)
	if err != nil {
		return nil, nil, err
	}

	return arch, out, nil
}

// finish writes the metrics file when requested, its failure is joined to err
func finish(err error) error {
	if metricsFile == "" {
		return err
	}

	merr := prometheus.WriteToTextfile(metricsFile, promRegistry)
	if merr != nil {
		return errors.Join(err, merr)
	}

	return err
}

func newOutputLogger() model.Logger {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	}

	return logging.NewSlogLogger(slog.New(slogcolor.NewHandler(os.Stdout, &slogcolor.Options{Level: level})))
}

func newLogger() (model.Logger, error) {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	case info:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	return logging.New(logFormat, os.Stderr, level)
}
