// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package backends registers the native archive backends, import it for its side effects
package backends

import (
	"github.com/choria-io/crosszip/backends/posix"
	"github.com/choria-io/crosszip/backends/powershell"
)

func init() {
	posix.Register()
	powershell.Register()
}
