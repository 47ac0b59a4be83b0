// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"runtime"
)

// Platform identifies the family of native archive tooling available on a host
type Platform string

const (
	// PlatformPosix hosts have the Info-ZIP zip and unzip commands
	PlatformPosix Platform = "posix"

	// PlatformWindows hosts have PowerShell and System.IO.Compression
	PlatformWindows Platform = "windows"
)

// HostPlatform determines the platform of the running process
func HostPlatform() Platform {
	return PlatformForOS(runtime.GOOS)
}

// PlatformForOS maps a GOOS value to a Platform
func PlatformForOS(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}

	return PlatformPosix
}

func (p Platform) String() string {
	return string(p)
}
