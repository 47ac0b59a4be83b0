// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	ErrInvalidRequest           = errors.New("invalid request")
	ErrSourceNotFound           = errors.New("source not found")
	ErrInvalidDestinationParent = errors.New("destination parent is not a directory")
	ErrDestinationNotADirectory = errors.New("destination is not a directory")
	ErrBackendFailure           = errors.New("backend failed")
	ErrCleanupFailure           = errors.New("cleanup failed")
	ErrBackendNotFound          = errors.New("backend not found")
	ErrBackendNotManageable     = errors.New("backend is not manageable")
	ErrNoSuitableBackend        = errors.New("no suitable backend found")
	ErrDuplicateBackend         = errors.New("backend already exists")
)

// BackendError is returned when a backend program could not be started or exited unsuccessfully
type BackendError struct {
	Backend  string
	Command  string
	Args     []string
	ExitCode int
	Output   []byte
	Err      error
}

func (e *BackendError) Error() string {
	cmdline := shellquote.Join(append([]string{e.Command}, e.Args...)...)
	output := strings.TrimSpace(string(e.Output))

	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s backend could not run %s: %v", ErrBackendFailure, e.Backend, cmdline, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s backend command %s exited with code %d", ErrBackendFailure, e.Backend, cmdline, e.ExitCode)
	}

	if output != "" {
		msg = fmt.Sprintf("%s: %s", msg, output)
	}

	return msg
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackendFailure
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// ErrorKind gives a short stable name for the class of err, used as a metric label
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBackendFailure):
		return "backend"
	case errors.Is(err, ErrCleanupFailure):
		return "cleanup"
	case errors.Is(err, ErrSourceNotFound):
		return "source_not_found"
	case errors.Is(err, ErrInvalidDestinationParent):
		return "invalid_destination_parent"
	case errors.Is(err, ErrDestinationNotADirectory):
		return "destination_not_directory"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrNoSuitableBackend), errors.Is(err, ErrBackendNotFound), errors.Is(err, ErrBackendNotManageable):
		return "backend_selection"
	default:
		return "other"
	}
}
