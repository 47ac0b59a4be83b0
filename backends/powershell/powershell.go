// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package powershell drives System.IO.Compression.ZipFile through powershell.exe
package powershell

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/unicode"

	"github.com/choria-io/crosszip/model"
)

const (
	ProviderName = "powershell"
	Command      = "powershell.exe"

	SourceVariable      = "CROSSZIP_SOURCE"
	DestinationVariable = "CROSSZIP_DESTINATION"
	IncludeBaseVariable = "CROSSZIP_INCLUDE_BASE"
)

// paths only ever reach the scripts through the environment
const (
	preamble = `$ErrorActionPreference = 'Stop'
try {
  Add-Type -AssemblyName System.IO.Compression
  Add-Type -AssemblyName System.IO.Compression.FileSystem
`

	trailer = `} catch {
  [Console]::Error.WriteLine($_.Exception.Message)
  exit 1
}
`

	archiveScript = preamble + `  $includeBase = [bool]::Parse($env:CROSSZIP_INCLUDE_BASE)
  [System.IO.Compression.ZipFile]::CreateFromDirectory($env:CROSSZIP_SOURCE, $env:CROSSZIP_DESTINATION, [System.IO.Compression.CompressionLevel]::Fastest, $includeBase, [System.Text.Encoding]::UTF8)
` + trailer

	extractScript = preamble + `  [System.IO.Compression.ZipFile]::ExtractToDirectory($env:CROSSZIP_SOURCE, $env:CROSSZIP_DESTINATION, [System.Text.Encoding]::UTF8)
` + trailer
)

var _ model.Backend = (*Provider)(nil)

type Provider struct {
	log model.Logger
}

func NewPowerShellProvider(log model.Logger) (*Provider, error) {
	return &Provider{log: log}, nil
}

func (p *Provider) Name() string { return ProviderName }

// ExtractsIntoExisting is false, ExtractToDirectory refuses to overwrite existing files
func (p *Provider) ExtractsIntoExisting() bool { return false }

func (p *Provider) ArchiveInvocation(req model.ArchiveRequest) (*model.Invocation, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	return invocation(archiveScript, []string{
		SourceVariable + "=" + req.Source,
		DestinationVariable + "=" + req.Destination,
		IncludeBaseVariable + "=" + strconv.FormatBool(req.IncludeBaseDirectory),
	})
}

func (p *Provider) ExtractInvocation(req model.ExtractRequest) (*model.Invocation, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	return invocation(extractScript, []string{
		SourceVariable + "=" + req.Source,
		DestinationVariable + "=" + req.Destination,
	})
}

func invocation(script string, env []string) (*model.Invocation, error) {
	encoded, err := EncodeCommand(script)
	if err != nil {
		return nil, err
	}

	return &model.Invocation{
		Command:     Command,
		Args:        []string{"-NoLogo", "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-EncodedCommand", encoded},
		Environment: env,
	}, nil
}

// EncodeCommand encodes script in the UTF-16LE base64 form -EncodedCommand expects
func EncodeCommand(script string) (string, error) {
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(script)
	if err != nil {
		return "", fmt.Errorf("could not encode script: %w", err)
	}

	return base64.StdEncoding.EncodeToString([]byte(utf16)), nil
}
