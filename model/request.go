// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
)

// ArchiveRequest describes a single archive operation, paths are absolute
type ArchiveRequest struct {
	Source               string
	Destination          string
	IncludeBaseDirectory bool
}

// Validate checks the request has both paths set
func (r ArchiveRequest) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("%w: source is required", ErrInvalidRequest)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	return nil
}

// ExtractRequest describes a single extract operation, paths are absolute
type ExtractRequest struct {
	Source      string
	Destination string
}

// Validate checks the request has both paths set
func (r ExtractRequest) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("%w: source is required", ErrInvalidRequest)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	return nil
}

// Invocation is a fully resolved backend program call
type Invocation struct {
	Command     string
	Args        []string
	Cwd         string
	Environment []string
}

// ExecOptions converts the invocation into runner options, path overrides the executable location when set
func (i *Invocation) ExecOptions(path string) ExtendedExecOptions {
	return ExtendedExecOptions{
		Command:     i.Command,
		Args:        i.Args,
		Cwd:         i.Cwd,
		Environment: i.Environment,
		Path:        path,
	}
}
