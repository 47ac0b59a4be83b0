// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

// Backend builds invocations of a native archiving facility, implementations must not touch the filesystem
type Backend interface {
	Name() string

	// ArchiveInvocation creates the program call that archives req.Source into req.Destination
	ArchiveInvocation(req ArchiveRequest) (*Invocation, error)

	// ExtractInvocation creates the program call that extracts req.Source into req.Destination
	ExtractInvocation(req ExtractRequest) (*Invocation, error)

	// ExtractsIntoExisting reports if the facility can extract into a directory that already has content
	ExtractsIntoExisting() bool
}

// BackendFactory creates backends and decides if they apply to a platform
type BackendFactory interface {
	// IsManageable reports if the backend applies to the platform and its priority, lower is preferred
	IsManageable(platform Platform) (bool, int, error)
	Name() string
	// Executables lists the programs the backend invokes
	Executables() []string
	New(Logger) (Backend, error)
}
