// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package logging adapts slog and logrus to model.Logger
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sirupsen/logrus"

	"github.com/choria-io/crosszip/model"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats are the formats accepted by New
var Formats = []string{FormatText, FormatJSON}

// New creates a logger writing to w, text uses slog and json uses logrus
func New(format string, w io.Writer, level slog.Level) (model.Logger, error) {
	switch format {
	case "", FormatText:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))), nil

	case FormatJSON:
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrusLevel(level))
		l.SetFormatter(&logrus.JSONFormatter{})

		return NewLogrusLogger(logrus.NewEntry(l)), nil

	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func logrusLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
