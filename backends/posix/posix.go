// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package posix drives the Info-ZIP zip and unzip commands
package posix

import (
	"path/filepath"
	"strings"

	"github.com/choria-io/crosszip/model"
)

const (
	ProviderName = "posix"
	ZipCommand   = "zip"
	UnzipCommand = "unzip"
)

var _ model.Backend = (*Provider)(nil)

type Provider struct {
	log model.Logger
}

func NewPosixProvider(log model.Logger) (*Provider, error) {
	return &Provider{log: log}, nil
}

func (p *Provider) Name() string { return ProviderName }

// ExtractsIntoExisting is true, unzip -o overwrites colliding entries in place
func (p *Provider) ExtractsIntoExisting() bool { return true }

// ArchiveInvocation recursively zips at the fastest level storing symlinks as links
func (p *Provider) ArchiveInvocation(req model.ArchiveRequest) (*model.Invocation, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	cwd := req.Source
	entry := "."

	if req.IncludeBaseDirectory {
		cwd = filepath.Dir(req.Source)
		entry = filepath.Base(req.Source)
	}

	// zip would parse these as options
	if strings.HasPrefix(entry, "-") {
		entry = "./" + entry
	}

	return &model.Invocation{
		Command: ZipCommand,
		Args:    []string{"-r", "-y", "-q", "-1", req.Destination, entry},
		Cwd:     cwd,
	}, nil
}

func (p *Provider) ExtractInvocation(req model.ExtractRequest) (*model.Invocation, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	return &model.Invocation{
		Command: UnzipCommand,
		Args:    []string{"-o", "-q", req.Source, "-d", req.Destination},
		Cwd:     req.Destination,
	}, nil
}
